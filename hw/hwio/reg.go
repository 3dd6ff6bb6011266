package hwio

import "snestor/emu/log"

// RWFlags restricts the direction of accesses to a register or device.
type RWFlags uint8

const (
	ReadOnlyFlag RWFlags = 1 << iota
	WriteOnlyFlag
)

// Reg8 is a single 8-bit register. Value holds the last written value.
// ReadCb computes the value driven on the bus, PeekCb does the same without
// side effects and WriteCb is notified after Value is updated. Write-only
// registers don't drive the bus at all.
type Reg8 struct {
	Name  string
	Value uint8
	Flags RWFlags

	ReadCb  func(val uint8) uint8
	PeekCb  func(val uint8) uint8
	WriteCb func(old uint8, val uint8)
}

func (reg *Reg8) Write8(addr uint16, val uint8) bool {
	if reg.Flags&ReadOnlyFlag != 0 {
		log.ModHwIo.DebugZ("write to readonly reg").
			String("name", reg.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return false
	}
	old := reg.Value
	reg.Value = val
	if reg.WriteCb != nil {
		reg.WriteCb(old, val)
	}
	return true
}

func (reg *Reg8) Read8(addr uint16) (uint8, bool) { return reg.load(reg.ReadCb) }
func (reg *Reg8) Peek8(addr uint16) (uint8, bool) { return reg.load(reg.PeekCb) }

func (reg *Reg8) load(cb func(uint8) uint8) (uint8, bool) {
	switch {
	case reg.Flags&WriteOnlyFlag != 0:
		return 0, false
	case cb != nil:
		return cb(reg.Value), true
	}
	return reg.Value, true
}
