package hw

import (
	"errors"
	"testing"

	"snestor/hw/input"
)

type fakeCPU struct {
	bus    Bus
	irq    bool
	nmis   int
	resets int
}

func (c *fakeCPU) RunOpcode()           { c.bus.CPUIdle(false) }
func (c *fakeCPU) SetIRQ(asserted bool) { c.irq = asserted }
func (c *fakeCPU) NMI()                 { c.nmis++ }
func (c *fakeCPU) Reset(bool)           { c.resets++ }

type fakeAPU struct {
	cycles uint64
	in     [4]uint8
	out    [4]uint8

	// cycles count observed at the last port access
	seen uint64
}

func (a *fakeAPU) Cycle() { a.cycles++ }

func (a *fakeAPU) ReadPort(i int) uint8 {
	a.seen = a.cycles
	return a.out[i]
}

func (a *fakeAPU) WritePort(i int, val uint8) {
	a.seen = a.cycles
	a.in[i] = val
}

func (a *fakeAPU) Reset() {}

type fakePPU struct {
	overscan bool
	regs     [0x40]uint8
	reads    []uint8
	vblanks  int
	lines    []int
}

func (p *fakePPU) Read(adr uint8) uint8 {
	p.reads = append(p.reads, adr)
	return p.regs[adr]
}

func (p *fakePPU) Write(adr, val uint8) { p.regs[adr] = val }
func (p *fakePPU) CheckOverscan() bool  { return p.overscan }
func (p *fakePPU) HandleVblank()        { p.vblanks++ }
func (p *fakePPU) RunLine(line int)     { p.lines = append(p.lines, line) }
func (p *fakePPU) Reset()               {}

type dmaStart struct {
	channels uint8
	hdma     bool
}

type fakeDMA struct {
	host     Host
	regs     [0x80]uint8
	starts   []dmaStart
	handled  []int
	hdmaInit int
	hdmaRun  int

	// when set, HandleDMA stalls the clock this many cycles.
	stall int
}

func (d *fakeDMA) Read(adr uint16) uint8       { return d.regs[adr-0x4300] }
func (d *fakeDMA) Write(adr uint16, val uint8) { d.regs[adr-0x4300] = val }
func (d *fakeDMA) Start(channels uint8, hdma bool) {
	d.starts = append(d.starts, dmaStart{channels, hdma})
}

func (d *fakeDMA) HandleDMA(cycles int) {
	d.handled = append(d.handled, cycles)
	if d.stall > 0 {
		d.host.RunCycles(d.stall)
		d.stall = 0
	}
}

func (d *fakeDMA) RequestHDMAInit() { d.hdmaInit++ }
func (d *fakeDMA) RequestHDMARun()  { d.hdmaRun++ }
func (d *fakeDMA) Reset()           {}

// fakeCart responds in banks $C0-$FF only.
type fakeCart struct {
	rom    map[uint32]uint8
	writes map[uint32]uint8
}

func (c *fakeCart) Read(bank uint8, adr uint16) (uint8, bool) {
	if bank < 0xc0 {
		return 0, false
	}
	return c.rom[uint32(bank)<<16|uint32(adr)], true
}

func (c *fakeCart) Write(bank uint8, adr uint16, val uint8) {
	c.writes[uint32(bank)<<16|uint32(adr)] = val
}

func (c *fakeCart) Reset() {}

type closer struct {
	name  string
	order *[]string
	err   error
}

func (c *closer) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

var errClose = errors.New("close failed")

type testSNES struct {
	*SNES
	cpu  *fakeCPU
	apu  *fakeAPU
	ppu  *fakePPU
	dma  *fakeDMA
	cart *fakeCart
	pads [2]*input.Pad
}

func newTestSNES(tb testing.TB) *testSNES {
	tb.Helper()

	ts := &testSNES{
		apu:  &fakeAPU{},
		ppu:  &fakePPU{},
		cart: &fakeCart{rom: make(map[uint32]uint8), writes: make(map[uint32]uint8)},
		pads: [2]*input.Pad{input.NewPad("p1", nil), input.NewPad("p2", nil)},
	}
	s, err := New(Devices{
		NewCPU: func(bus Bus) (Processor, error) {
			ts.cpu = &fakeCPU{bus: bus}
			return ts.cpu, nil
		},
		NewDMA: func(host Host) (DMAEngine, error) {
			ts.dma = &fakeDMA{host: host}
			return ts.dma, nil
		},
		APU:   ts.apu,
		PPU:   ts.ppu,
		Cart:  ts.cart,
		Input: [2]ControllerPort{ts.pads[0], ts.pads[1]},
	})
	if err != nil {
		tb.Fatal(err)
	}
	ts.SNES = s
	return ts
}

// steps runs n atomic 2-cycle steps.
func (ts *testSNES) steps(n int) {
	for range n {
		ts.Step()
	}
}

// stepTo runs until the beam reaches (vpos, hpos).
func (ts *testSNES) stepTo(vpos, hpos uint16) {
	for ts.VPos != vpos || ts.HPos != hpos {
		ts.Step()
	}
}

func (ts *testSNES) wantRead(tb testing.TB, addr uint32, want uint8) {
	tb.Helper()
	if got := ts.Read(addr); got != want {
		tb.Errorf("Read(%06X) = %02X, want %02X", addr, got, want)
	}
}
