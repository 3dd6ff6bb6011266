package snapshot

import (
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"
)

func TestTimingJSON(t *testing.T) {
	want := Timing{
		HPos:        1362,
		VPos:        225,
		Frames:      3,
		Cycles:      1234567,
		Vblank:      true,
		InNMI:       true,
		NMIEnabled:  true,
		VIRQEnabled: true,
		HTimer:      0x1ff,
		VTimer:      0x0e1,
		AutoJoyBusy: true,
		AutoRead:    [4]uint16{0x8000, 0x0001, 0, 0xffff},
		OpenBus:     0x42,
		WRAMAddr:    0x1fffe,
		FastMem:     true,
		APUDebt:     4272,
		APUDebtDen:  44671,
	}

	var e jx.Encoder
	want.EncodeJSON(&e)

	out := e.String()
	for _, field := range []string{`"hpos":1362`, `"autoread":[32768,1,0,65535]`, `"apu_debt":"4272/44671"`} {
		if !strings.Contains(out, field) {
			t.Errorf("encoded %s, missing %s", out, field)
		}
	}

	var got Timing
	if err := got.DecodeJSON(jx.DecodeBytes(e.Bytes())); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestTimingDecodeUnknownField(t *testing.T) {
	var got Timing
	err := got.DecodeJSON(jx.DecodeStr(`{"vpos":12,"future":{"a":[1,2]},"hpos":4}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.VPos != 12 || got.HPos != 4 {
		t.Errorf("got vpos=%d hpos=%d, want 12 and 4", got.VPos, got.HPos)
	}
}

func TestTimingDecodeError(t *testing.T) {
	var got Timing
	if err := got.DecodeJSON(jx.DecodeStr(`{"vpos":"nope"}`)); err == nil {
		t.Errorf("expected an error")
	}
}
