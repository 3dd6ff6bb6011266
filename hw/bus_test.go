package hw

import (
	"testing"
)

func TestWRAMMirrors(t *testing.T) {
	tests := []struct {
		write, read uint32
	}{
		{0x7e0000, 0x000000},
		{0x7e1fff, 0x3f1fff},
		{0x001234, 0x7e1234},
		{0x801234, 0xbf1234},
		{0x7f8000, 0x7f8000},
		{0x7eabcd, 0x7eabcd},
	}
	for i, tt := range tests {
		ts := newTestSNES(t)
		val := uint8(0x10 + i)
		ts.Write(tt.write, val)
		ts.wantRead(t, tt.read, val)
	}

	// The mirror only covers the first 8K, and banks $7E/$7F don't alias.
	ts := newTestSNES(t)
	ts.Write(0x7e2000, 0x55)
	ts.Write(0x7f0000, 0x66)
	if ts.RAM[0x2000] != 0x55 || ts.RAM[0x10000] != 0x66 {
		t.Errorf("RAM[2000]=%02X RAM[10000]=%02X", ts.RAM[0x2000], ts.RAM[0x10000])
	}
	ts.Write(0x004220, 0x00)
	ts.wantRead(t, 0x002000, 0x00)
}

func TestWRAMPort(t *testing.T) {
	ts := newTestSNES(t)

	// cursor = $1FFFF
	ts.Write(0x002181, 0xff)
	ts.Write(0x002182, 0xff)
	ts.Write(0x002183, 0xff)
	if got := ts.WRAMAddr(); got != 0x1ffff {
		t.Fatalf("cursor = %05X, want 1FFFF", got)
	}

	ts.Write(0x002180, 0x11)
	ts.Write(0x002180, 0x22)
	if ts.RAM[0x1ffff] != 0x11 || ts.RAM[0] != 0x22 {
		t.Errorf("RAM[1FFFF]=%02X RAM[0]=%02X, want 11 and 22", ts.RAM[0x1ffff], ts.RAM[0])
	}
	if got := ts.WRAMAddr(); got != 1 {
		t.Errorf("cursor = %05X, want 00001", got)
	}

	// read back through the port, from bank $80.
	ts.Write(0x802181, 0xff)
	ts.Write(0x802182, 0xff)
	ts.Write(0x802183, 0x01)
	ts.wantRead(t, 0x802180, 0x11)
	ts.wantRead(t, 0x802180, 0x22)

	// only bit 0 of $2183 is used.
	ts.Write(0x002183, 0xff)
	if got := ts.WRAMAddr(); got != 0x10001 {
		t.Errorf("cursor = %05X, want 10001", got)
	}

	// the cursor registers are write-only.
	ts.Write(0x000000, 0x5a)
	ts.Read(0x000000)
	ts.wantRead(t, 0x002181, 0x5a)
}

func TestOpenBus(t *testing.T) {
	ts := newTestSNES(t)

	// Nothing responds at $4220 and in bank $40 (fake cart only handles $C0+).
	ts.Write(0x004220, 0xa5)
	ts.wantRead(t, 0x004220, 0xa5)
	ts.wantRead(t, 0x408000, 0xa5)

	// Reads update the bus too.
	ts.RAM[0x10] = 0x3c
	ts.wantRead(t, 0x000010, 0x3c)
	ts.wantRead(t, 0x004220, 0x3c)

	// Write-only registers and unmapped B-bus addresses float.
	ts.wantRead(t, 0x004200, 0x3c)
	ts.wantRead(t, 0x00420e, 0x3c)
	ts.wantRead(t, 0x002190, 0x3c)

	// Partially driven registers.
	ts.Write(0x004220, 0xff)
	ts.wantRead(t, 0x004210, 0x72) // version 2, bits 4-6 from the bus
	ts.Write(0x004220, 0xff)
	ts.wantRead(t, 0x004211, 0x7f)
	ts.Write(0x004220, 0xff)
	ts.wantRead(t, 0x004212, 0x3e)
}

func TestCartRouting(t *testing.T) {
	ts := newTestSNES(t)
	ts.cart.rom[0xc08000] = 0x99
	ts.cart.rom[0xc00000] = 0x98

	ts.wantRead(t, 0xc08000, 0x99)
	ts.wantRead(t, 0xc00000, 0x98)

	// Banks $C0+ are not system banks, low addresses belong to the cart.
	ts.Write(0xc01000, 0x01)
	if ts.cart.writes[0xc01000] != 0x01 {
		t.Errorf("write did not reach the cartridge")
	}
	if ts.RAM[0x1000] == 0x01 {
		t.Errorf("write in bank $C0 reached the RAM mirror")
	}

	// Claimed addresses never reach the cartridge.
	ts.Write(0x001000, 0x02)
	ts.Write(0x004202, 0x03)
	if len(ts.cart.writes) != 1 {
		t.Errorf("cartridge got %d writes, want 1", len(ts.cart.writes))
	}

	// Unclaimed system bank addresses do.
	ts.Write(0x006000, 0x04)
	if ts.cart.writes[0x006000] != 0x04 {
		t.Errorf("write to $006000 did not reach the cartridge")
	}
}

func TestBBusForwarding(t *testing.T) {
	ts := newTestSNES(t)

	ts.Write(0x002100, 0x8f)
	ts.Write(0x80213f, 0x12)
	if ts.ppu.regs[0x00] != 0x8f || ts.ppu.regs[0x3f] != 0x12 {
		t.Errorf("ppu regs = %02X %02X", ts.ppu.regs[0x00], ts.ppu.regs[0x3f])
	}
	ts.wantRead(t, 0x00213f, 0x12)

	// DMA registers.
	ts.Write(0x004305, 0x34)
	if ts.dma.regs[0x05] != 0x34 {
		t.Errorf("dma reg 5 = %02X, want 34", ts.dma.regs[0x05])
	}
	ts.wantRead(t, 0x004305, 0x34)

	ts.Write(0x00420b, 0x03)
	ts.Write(0x00420c, 0x80)
	want := []dmaStart{{0x03, false}, {0x80, true}}
	if len(ts.dma.starts) != 2 || ts.dma.starts[0] != want[0] || ts.dma.starts[1] != want[1] {
		t.Errorf("dma starts = %v, want %v", ts.dma.starts, want)
	}
}

func TestControllerPorts(t *testing.T) {
	ts := newTestSNES(t)
	ts.pads[0].Provider = heldState(0b101)
	ts.pads[1].Provider = heldState(0b010)

	// latch through $4016, both ports follow.
	ts.Write(0x004016, 0x01)
	ts.Step()
	ts.Write(0x004016, 0x00)

	ts.Write(0x004220, 0x00)
	ts.wantRead(t, 0x004016, 0x01)
	ts.wantRead(t, 0x004017, 0x1c)
	ts.wantRead(t, 0x004016, 0x1c) // bits 2-7 from the bus
	ts.wantRead(t, 0x004017, 0x1d)
}

type heldState uint16

func (h heldState) State() uint16 { return uint16(h) }

func TestPeekHasNoSideEffects(t *testing.T) {
	ts := newTestSNES(t)
	ts.irq.inNmi = true
	ts.irq.inIrq = true
	ts.ramAdr = 0x100
	ts.RAM[0x100] = 0x77
	ts.Write(0x004220, 0x00)

	if got := ts.Peek(0x004210); got != 0x82 {
		t.Errorf("Peek(4210) = %02X, want 82", got)
	}
	if got := ts.Peek(0x004211); got != 0x80 {
		t.Errorf("Peek(4211) = %02X, want 80", got)
	}
	if got := ts.Peek(0x002180); got != 0x77 {
		t.Errorf("Peek(2180) = %02X, want 77", got)
	}
	ts.Peek(0x002140)

	if !ts.irq.inNmi || !ts.irq.inIrq || ts.ramAdr != 0x100 || ts.apu.seen != 0 {
		t.Errorf("Peek had side effects")
	}

	ts.RAM[0x1234] = 0x42
	if got := ts.Peek(0x7e1234); got != 0x42 {
		t.Errorf("Peek(7E1234) = %02X, want 42", got)
	}
	if ts.OpenBus() != 0x00 {
		t.Errorf("Peek changed the open bus to %02X", ts.OpenBus())
	}
}
