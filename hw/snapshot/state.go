package snapshot

import (
	"fmt"

	"github.com/go-faster/jx"
)

// Timing is a point-in-time view of the console clock and interrupt state.
// It is a trace record only, there is no way to restore a console from it.
type Timing struct {
	HPos   uint16
	VPos   uint16
	Frames uint64
	Cycles uint64

	Vblank      bool
	InNMI       bool
	InIRQ       bool
	NMIEnabled  bool
	HIRQEnabled bool
	VIRQEnabled bool
	HTimer      uint16
	VTimer      uint16

	AutoJoyBusy bool
	AutoRead    [4]uint16

	OpenBus  uint8
	WRAMAddr uint32
	FastMem  bool

	// Sound unit cycles owed, as APUDebt/APUDebtDen.
	APUDebt    uint64
	APUDebtDen uint64
}

// EncodeJSON writes t as a JSON object.
func (t *Timing) EncodeJSON(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("hpos")
	e.UInt16(t.HPos)
	e.FieldStart("vpos")
	e.UInt16(t.VPos)
	e.FieldStart("frames")
	e.UInt64(t.Frames)
	e.FieldStart("cycles")
	e.UInt64(t.Cycles)
	e.FieldStart("vblank")
	e.Bool(t.Vblank)
	e.FieldStart("in_nmi")
	e.Bool(t.InNMI)
	e.FieldStart("in_irq")
	e.Bool(t.InIRQ)
	e.FieldStart("nmi_enabled")
	e.Bool(t.NMIEnabled)
	e.FieldStart("hirq_enabled")
	e.Bool(t.HIRQEnabled)
	e.FieldStart("virq_enabled")
	e.Bool(t.VIRQEnabled)
	e.FieldStart("htimer")
	e.UInt16(t.HTimer)
	e.FieldStart("vtimer")
	e.UInt16(t.VTimer)
	e.FieldStart("autojoy_busy")
	e.Bool(t.AutoJoyBusy)
	e.FieldStart("autoread")
	e.ArrStart()
	for _, v := range t.AutoRead {
		e.UInt16(v)
	}
	e.ArrEnd()
	e.FieldStart("openbus")
	e.UInt8(t.OpenBus)
	e.FieldStart("wram_addr")
	e.UInt32(t.WRAMAddr)
	e.FieldStart("fastmem")
	e.Bool(t.FastMem)
	e.FieldStart("apu_debt")
	e.Str(fmt.Sprintf("%d/%d", t.APUDebt, t.APUDebtDen))
	e.ObjEnd()
}

// DecodeJSON reads back an object written by EncodeJSON, for trace analysis
// tools.
func (t *Timing) DecodeJSON(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "hpos":
			t.HPos, err = d.UInt16()
		case "vpos":
			t.VPos, err = d.UInt16()
		case "frames":
			t.Frames, err = d.UInt64()
		case "cycles":
			t.Cycles, err = d.UInt64()
		case "vblank":
			t.Vblank, err = d.Bool()
		case "in_nmi":
			t.InNMI, err = d.Bool()
		case "in_irq":
			t.InIRQ, err = d.Bool()
		case "nmi_enabled":
			t.NMIEnabled, err = d.Bool()
		case "hirq_enabled":
			t.HIRQEnabled, err = d.Bool()
		case "virq_enabled":
			t.VIRQEnabled, err = d.Bool()
		case "htimer":
			t.HTimer, err = d.UInt16()
		case "vtimer":
			t.VTimer, err = d.UInt16()
		case "autojoy_busy":
			t.AutoJoyBusy, err = d.Bool()
		case "autoread":
			i := 0
			err = d.Arr(func(d *jx.Decoder) error {
				v, err := d.UInt16()
				if err != nil {
					return err
				}
				if i >= len(t.AutoRead) {
					return fmt.Errorf("too many autoread values")
				}
				t.AutoRead[i] = v
				i++
				return nil
			})
		case "openbus":
			t.OpenBus, err = d.UInt8()
		case "wram_addr":
			t.WRAMAddr, err = d.UInt32()
		case "fastmem":
			t.FastMem, err = d.Bool()
		case "apu_debt":
			var s string
			if s, err = d.Str(); err == nil {
				_, err = fmt.Sscanf(s, "%d/%d", &t.APUDebt, &t.APUDebtDen)
			}
		default:
			err = d.Skip()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	})
}
