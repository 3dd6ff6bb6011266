package hwio

import (
	"fmt"

	"snestor/emu/log"
)

// log unmapped accesses (useful for debugging but very verbose, since many
// games read from open bus)
const logUnmapped = false

// BankIO8 is implemented by anything that can be mapped into a Table.
//
// ok reports whether the device drove the bus. A read that returns ok=false
// leaves the bus floating and the caller is expected to substitute the
// open-bus value.
type BankIO8 interface {
	Read8(addr uint16) (val uint8, ok bool)
	Peek8(addr uint16) (val uint8, ok bool)
	Write8(addr uint16, val uint8) bool
}

// Table maps a contiguous window of addresses [Base, Base+len) to devices.
type Table struct {
	Name string
	Base uint16

	slots []BankIO8
}

func NewTable(name string, base uint16, size int) *Table {
	return &Table{
		Name:  name,
		Base:  base,
		slots: make([]BankIO8, size),
	}
}

// Contains reports whether addr falls into the table window.
func (t *Table) Contains(addr uint16) bool {
	return addr >= t.Base && int(addr-t.Base) < len(t.slots)
}

func (t *Table) mapRange(addr uint16, size int, io BankIO8) {
	if !t.Contains(addr) || int(addr-t.Base)+size > len(t.slots) {
		panic(fmt.Errorf("hwio: %s: range %04x+%d out of window", t.Name, addr, size))
	}
	start := int(addr - t.Base)
	for i := start; i < start+size; i++ {
		t.slots[i] = io
	}
}

func (t *Table) MapReg8(addr uint16, reg *Reg8) {
	log.ModHwIo.DebugZ("mapping reg").
		Hex16("addr", addr).
		String("name", reg.Name).
		String("table", t.Name).
		End()
	t.mapRange(addr, 1, reg)
}

func (t *Table) MapDevice(addr uint16, dev *Device) {
	log.ModHwIo.DebugZ("mapping device").
		Hex16("addr", addr).
		Int("size", dev.Size).
		String("name", dev.Name).
		String("table", t.Name).
		End()
	t.mapRange(addr, dev.Size, dev)
}

func (t *Table) search(addr uint16) BankIO8 {
	if !t.Contains(addr) {
		return nil
	}
	return t.slots[addr-t.Base]
}

// Read8 forwards the read to the device mapped at addr. ok is false if
// nothing is mapped there or if the device does not drive the bus.
func (t *Table) Read8(addr uint16) (uint8, bool) {
	io := t.search(addr)
	if io == nil {
		if logUnmapped {
			log.ModHwIo.WarnZ("unmapped Read8").
				String("name", t.Name).
				Hex16("addr", addr).
				End()
		}
		return 0, false
	}
	return io.Read8(addr)
}

// Peek8 is like Read8 but never triggers side effects.
func (t *Table) Peek8(addr uint16) (uint8, bool) {
	io := t.search(addr)
	if io == nil {
		return 0, false
	}
	return io.Peek8(addr)
}

// Write8 forwards the write to the device mapped at addr, writes to unmapped
// addresses are ignored. It reports whether a device accepted the write.
func (t *Table) Write8(addr uint16, val uint8) bool {
	io := t.search(addr)
	if io == nil {
		if logUnmapped {
			log.ModHwIo.WarnZ("unmapped Write8").
				String("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		return false
	}
	return io.Write8(addr, val)
}
