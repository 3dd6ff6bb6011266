package emu

import "snestor/hw/hwio"

// headlessPPU stands in for the picture processor. It keeps the registers
// written to it and counts the work it is given, without producing any
// picture.
type headlessPPU struct {
	regs          [0x40]uint8
	forceOverscan bool

	lines   uint64
	vblanks uint64
	latches uint64 // H/V counter latches (SLHV reads)
}

// $2133 SETINI bit 2 selects 239-line frames.
const setini = 0x33

func (p *headlessPPU) Read(adr uint8) uint8 {
	if adr == 0x37 {
		p.latches++
	}
	// Status registers report nothing.
	return 0
}

func (p *headlessPPU) Write(adr, val uint8) { p.regs[adr&0x3f] = val }

func (p *headlessPPU) CheckOverscan() bool {
	return p.forceOverscan || hwio.GetBit8(p.regs[setini], 2)
}

func (p *headlessPPU) HandleVblank()    { p.vblanks++ }
func (p *headlessPPU) RunLine(line int) { p.lines++ }

func (p *headlessPPU) Reset() {
	p.regs = [0x40]uint8{}
}

// headlessAPU stands in for the sound unit. Out of reset it shows the IPL
// ready signature ($AA, $BB) on ports 0 and 1, then echoes port 0 once the
// processor starts talking, which is what the IPL does while acknowledging a
// transfer.
type headlessAPU struct {
	in     [4]uint8
	out    [4]uint8
	cycles uint64
}

func (a *headlessAPU) Cycle() { a.cycles++ }

func (a *headlessAPU) ReadPort(i int) uint8 { return a.out[i&3] }

func (a *headlessAPU) WritePort(i int, val uint8) {
	a.in[i&3] = val
	if i&3 == 0 {
		a.out[0] = val
	}
}

func (a *headlessAPU) Reset() {
	a.in = [4]uint8{}
	a.out = [4]uint8{0xaa, 0xbb, 0, 0}
}
