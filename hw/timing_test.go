package hw

import (
	"testing"

	"snestor/hw/hwdefs"
)

func TestAccessTime(t *testing.T) {
	tests := []struct {
		addr uint32
		slow hwdefs.AccessSpeed // MEMSEL=0
		fast hwdefs.AccessSpeed // MEMSEL=1
	}{
		{0x000000, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x801fff, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x002140, hwdefs.FastAccess, hwdefs.FastAccess},
		{0x003fff, hwdefs.FastAccess, hwdefs.FastAccess},
		{0x004016, hwdefs.ExtraSlowAccess, hwdefs.ExtraSlowAccess},
		{0x8041ff, hwdefs.ExtraSlowAccess, hwdefs.ExtraSlowAccess},
		{0x004200, hwdefs.FastAccess, hwdefs.FastAccess},
		{0x005fff, hwdefs.FastAccess, hwdefs.FastAccess},
		{0x006000, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x008000, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x3fffff, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x408000, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x7e0000, hwdefs.SlowAccess, hwdefs.SlowAccess},
		{0x808000, hwdefs.SlowAccess, hwdefs.FastAccess},
		{0xbfffff, hwdefs.SlowAccess, hwdefs.FastAccess},
		{0xc00000, hwdefs.SlowAccess, hwdefs.FastAccess},
		{0xffffff, hwdefs.SlowAccess, hwdefs.FastAccess},
	}

	ts := newTestSNES(t)
	for _, tt := range tests {
		ts.Write(0x00420d, 0x00)
		if got := ts.AccessTime(tt.addr); got != int(tt.slow) {
			t.Errorf("AccessTime(%06X) = %d, want %d", tt.addr, got, tt.slow)
		}
		ts.Write(0x00420d, 0x01)
		if got := ts.AccessTime(tt.addr); got != int(tt.fast) {
			t.Errorf("fastrom: AccessTime(%06X) = %d, want %d", tt.addr, got, tt.fast)
		}
	}
}

func TestCPUAccessCharges(t *testing.T) {
	ts := newTestSNES(t)
	ts.RAM[0x10] = 0x42

	if got := ts.CPURead(0x000010); got != 0x42 {
		t.Errorf("CPURead = %02X, want 42", got)
	}
	if ts.Cycles != 8 {
		t.Errorf("slow read took %d cycles, want 8", ts.Cycles)
	}

	ts.CPUWrite(0x004016, 0x00)
	if ts.Cycles != 20 {
		t.Errorf("cycles = %d after xslow write, want 20", ts.Cycles)
	}

	ts.CPUIdle(false)
	if ts.Cycles != 26 {
		t.Errorf("cycles = %d after idle, want 26", ts.Cycles)
	}

	want := []int{8, 12, 6}
	if len(ts.dma.handled) != len(want) {
		t.Fatalf("HandleDMA calls = %v, want %v", ts.dma.handled, want)
	}
	for i := range want {
		if ts.dma.handled[i] != want[i] {
			t.Errorf("HandleDMA calls = %v, want %v", ts.dma.handled, want)
			break
		}
	}
}

// A transfer started by HandleDMA runs before the access itself is charged.
func TestCPUAccessAfterDMA(t *testing.T) {
	ts := newTestSNES(t)
	ts.dma.stall = 100

	ts.CPUWrite(0x7e0000, 0x01)
	if ts.Cycles != 108 {
		t.Errorf("cycles = %d, want 108", ts.Cycles)
	}
	if ts.RAM[0] != 0x01 {
		t.Errorf("RAM[0] = %02X, want 01", ts.RAM[0])
	}
}

// Sound unit ports sit in the 6-cycle area whatever MEMSEL says, and the
// sound unit is caught up, charged cycles included, before the port is read.
func TestCPUReadAPUPort(t *testing.T) {
	ts := newTestSNES(t)
	ts.apu.out = [4]uint8{0x5a, 0, 0, 0}
	ts.steps(500)

	for _, memsel := range []uint8{0x00, 0x01} {
		ts.Write(0x00420d, memsel)
		for _, addr := range []uint32{0x002140, 0x802140} {
			before := ts.Cycles
			if got := ts.CPURead(addr); got != 0x5a {
				t.Errorf("MEMSEL=%d: CPURead(%06X) = %02X, want 5A", memsel, addr, got)
			}
			if n := ts.Cycles - before; n != 6 {
				t.Errorf("MEMSEL=%d: CPURead(%06X) took %d cycles, want 6", memsel, addr, n)
			}
			if want := ts.Cycles * apuRatioNum / apuRatioDen; ts.apu.seen != want {
				t.Errorf("MEMSEL=%d: sound unit at %d cycles when read, want %d", memsel, ts.apu.seen, want)
			}
		}
	}
}
