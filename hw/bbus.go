package hw

import (
	"snestor/hw/hwdefs"
	"snestor/hw/hwio"
)

// ReadBBus reads from the B-bus ($21xx). Unmapped addresses return the open
// bus value.
func (s *SNES) ReadBBus(adr uint8) uint8 {
	if val, ok := s.bbus.Read8(uint16(adr)); ok {
		return val
	}
	return s.openBus
}

// WriteBBus writes to the B-bus ($21xx).
func (s *SNES) WriteBBus(adr uint8, val uint8) {
	s.bbus.Write8(uint16(adr), val)
}

// $2140-$217F: the 4 sound unit mailbox ports, mirrored. The sound unit is
// caught up first so that it sees, and shows, current values.
func (s *SNES) ReadAPUIO(addr uint16) uint8 {
	s.catchupAPU()
	return s.APU.ReadPort(int(addr & 3))
}

func (s *SNES) PeekAPUIO(addr uint16) uint8 {
	return s.APU.ReadPort(int(addr & 3))
}

func (s *SNES) WriteAPUIO(addr uint16, val uint8) {
	s.catchupAPU()
	s.APU.WritePort(int(addr&3), val)
}

// $2180: WRAM data port, the cursor post-increments and wraps at 128K.
func (s *SNES) ReadWMDATA(_ uint8) uint8 {
	val := s.RAM[s.ramAdr]
	s.ramAdr = (s.ramAdr + 1) & hwdefs.WRAMMask
	return val
}

func (s *SNES) PeekWMDATA(_ uint8) uint8 {
	return s.RAM[s.ramAdr]
}

func (s *SNES) WriteWMDATA(_, val uint8) {
	s.RAM[s.ramAdr] = val
	s.ramAdr = (s.ramAdr + 1) & hwdefs.WRAMMask
}

// $2181
func (s *SNES) WriteWMADDL(_, val uint8) {
	s.ramAdr = s.ramAdr&0x1ff00 | uint32(val)
}

// $2182
func (s *SNES) WriteWMADDM(_, val uint8) {
	s.ramAdr = s.ramAdr&0x100ff | uint32(val)<<8
}

// $2183
func (s *SNES) WriteWMADDH(_, val uint8) {
	s.ramAdr = s.ramAdr&0x0ffff | uint32(hwio.GetBiti8(val, 0))<<16
}

// WRAMAddr returns the WRAM port cursor.
func (s *SNES) WRAMAddr() uint32 { return s.ramAdr }
