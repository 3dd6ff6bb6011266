package hw

import (
	"testing"

	"snestor/hw/hwdefs"
)

func TestAPUCatchUpFrame(t *testing.T) {
	ts := newTestSNES(t)

	ts.steps(hwdefs.CyclesPerFrame / 2)
	if ts.apu.cycles != 0 {
		t.Fatalf("the sound unit should only run when caught up, ran %d cycles", ts.apu.cycles)
	}

	ts.catchupAPU()
	if ts.apu.cycles != 17088 {
		t.Errorf("apu cycles = %d, want 17088", ts.apu.cycles)
	}
	if ts.apuDebt.debt != 0 {
		t.Errorf("debt = %d, want 0", ts.apuDebt.debt)
	}
}

func TestAPUCatchUpRemainder(t *testing.T) {
	var a apuCatchUp

	a.accumulate(20)
	if n := a.take(); n != 0 {
		t.Fatalf("take() = %d, want 0", n)
	}
	a.accumulate(2)
	// 22 * 2136 = 46992 = 44671 + 2321
	if n := a.take(); n != 1 {
		t.Fatalf("take() = %d, want 1", n)
	}
	if a.debt != 2321 {
		t.Errorf("debt = %d, want 2321", a.debt)
	}
}

func TestAPUPortsCatchUp(t *testing.T) {
	ts := newTestSNES(t)
	ts.apu.out = [4]uint8{0xaa, 0xbb, 0xcc, 0xdd}

	ts.steps(100)
	// 200 master cycles * 2136 / 44671 = 9.56
	ts.wantRead(t, 0x002141, 0xbb)
	if ts.apu.seen != 9 {
		t.Errorf("sound unit ran %d cycles before the port read, want 9", ts.apu.seen)
	}

	ts.steps(100)
	ts.Write(0x00217e, 0x42) // mirror of $2142
	if ts.apu.in[2] != 0x42 {
		t.Errorf("in port 2 = %02X, want 42", ts.apu.in[2])
	}
	if ts.apu.seen != 19 {
		t.Errorf("sound unit ran %d cycles before the port write, want 19", ts.apu.seen)
	}

	// ports are mirrored every 4 bytes across $2140-$217F.
	ts.wantRead(t, 0x80217f, 0xdd)
}
