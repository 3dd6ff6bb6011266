package hwio

// Device is a BankIO8 implementation that allows manual management of an entire
// range of addresses, typically forwarding accesses to another chip.
type Device struct {
	Name  string // name of the device (for debugging)
	Size  int    // number of consecutive addresses covered
	Flags RWFlags

	ReadCb  func(addr uint16) uint8
	PeekCb  func(addr uint16) uint8
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) Read8(addr uint16) (uint8, bool) {
	if d.Flags&WriteOnlyFlag != 0 || d.ReadCb == nil {
		return 0, false
	}
	return d.ReadCb(addr), true
}

func (d *Device) Peek8(addr uint16) (uint8, bool) {
	if d.Flags&WriteOnlyFlag != 0 || d.PeekCb == nil {
		return 0, false
	}
	return d.PeekCb(addr), true
}

func (d *Device) Write8(addr uint16, val uint8) bool {
	if d.Flags&ReadOnlyFlag != 0 || d.WriteCb == nil {
		return false
	}
	d.WriteCb(addr, val)
	return true
}
