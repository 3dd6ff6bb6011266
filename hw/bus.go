package hw

import (
	"snestor/emu/log"
	"snestor/hw/hwdefs"
	"snestor/hw/hwio"
)

// isSystemBank reports whether bank maps the low RAM mirror and the I/O
// registers ($00-$3F and $80-$BF).
func isSystemBank(bank uint8) bool {
	return bank < 0x40 || (bank >= 0x80 && bank < 0xc0)
}

func isWRAMBank(bank uint8) bool {
	return bank == 0x7e || bank == 0x7f
}

func splitAddr(addr uint32) (bank uint8, adr uint16) {
	return uint8(addr >> 16), uint16(addr)
}

// CPURead implements Bus.
func (s *SNES) CPURead(addr uint32) uint8 {
	s.charge(s.AccessTime(addr))
	return s.Read(addr)
}

// CPUWrite implements Bus.
func (s *SNES) CPUWrite(addr uint32, val uint8) {
	s.charge(s.AccessTime(addr))
	s.Write(addr, val)
}

// CPUIdle implements Bus.
func (s *SNES) CPUIdle(waiting bool) {
	s.charge(int(hwdefs.FastAccess))
}

// charge runs pending DMA then advances the clock, in that order, before a
// processor access is resolved.
func (s *SNES) charge(cycles int) {
	s.DMA.HandleDMA(cycles)
	s.RunCycles(cycles)
}

// Read reads a byte from the A-bus, without charging any cycle.
func (s *SNES) Read(addr uint32) uint8 {
	val := s.read(addr)
	s.openBus = val
	return val
}

func (s *SNES) read(addr uint32) uint8 {
	bank, adr := splitAddr(addr)
	if isWRAMBank(bank) {
		return s.RAM[uint32(bank&1)<<16|uint32(adr)]
	}
	if isSystemBank(bank) {
		switch {
		case adr < 0x2000:
			return s.RAM[adr]
		case adr >= 0x2100 && adr < 0x2200:
			return s.ReadBBus(uint8(adr))
		case adr == 0x4016:
			return s.Input[0].Read() | s.openBus&0xfc
		case adr == 0x4017:
			return s.Input[1].Read() | s.openBus&0xe0 | 0x1c
		case s.regs.Contains(adr):
			return s.readTable(s.regs, adr)
		case s.dmaio.Contains(adr):
			return s.readTable(s.dmaio, adr)
		}
	}
	if val, ok := s.Cart.Read(bank, adr); ok {
		return val
	}
	return s.openBus
}

func (s *SNES) readTable(t *hwio.Table, adr uint16) uint8 {
	if val, ok := t.Read8(adr); ok {
		return val
	}
	return s.openBus
}

// Write writes a byte on the A-bus, without charging any cycle.
func (s *SNES) Write(addr uint32, val uint8) {
	s.openBus = val
	bank, adr := splitAddr(addr)
	if isWRAMBank(bank) {
		s.RAM[uint32(bank&1)<<16|uint32(adr)] = val
		return
	}
	if isSystemBank(bank) {
		switch {
		case adr < 0x2000:
			s.RAM[adr] = val
			return
		case adr >= 0x2100 && adr < 0x2200:
			s.WriteBBus(uint8(adr), val)
			return
		case adr == 0x4016:
			latch := hwio.GetBit8(val, 0)
			s.Input[0].SetLatch(latch)
			s.Input[1].SetLatch(latch)
			return
		case s.regs.Contains(adr):
			s.regs.Write8(adr, val)
			return
		case s.dmaio.Contains(adr):
			s.dmaio.Write8(adr, val)
			return
		}
	}
	s.Cart.Write(bank, adr, val)
}

// Peek returns the byte a read at addr would return, without any side effect
// on the console or the devices. Controller ports and pixel unit registers
// can't be observed this way and read as open bus.
func (s *SNES) Peek(addr uint32) uint8 {
	bank, adr := splitAddr(addr)
	if isWRAMBank(bank) {
		return s.RAM[uint32(bank&1)<<16|uint32(adr)]
	}
	if isSystemBank(bank) {
		var t *hwio.Table
		switch {
		case adr < 0x2000:
			return s.RAM[adr]
		case adr >= 0x2100 && adr < 0x2200:
			t, adr = s.bbus, adr&0xff
		case adr == 0x4016 || adr == 0x4017:
			return s.openBus
		case s.regs.Contains(adr):
			t = s.regs
		case s.dmaio.Contains(adr):
			t = s.dmaio
		}
		if t != nil {
			if val, ok := t.Peek8(adr); ok {
				return val
			}
			return s.openBus
		}
	}
	if val, ok := s.Cart.Read(bank, adr); ok {
		return val
	}
	return s.openBus
}

// AccessTime returns the number of master cycles an access at addr takes.
func (s *SNES) AccessTime(addr uint32) int {
	return int(s.accessSpeed(addr))
}

func (s *SNES) accessSpeed(addr uint32) hwdefs.AccessSpeed {
	bank, adr := splitAddr(addr)
	switch {
	case bank >= 0x40 && bank < 0x80:
		return hwdefs.SlowAccess
	case bank >= 0xc0:
		return s.romSpeed()
	}

	// banks $00-$3F and $80-$BF
	switch {
	case adr < 0x2000:
		return hwdefs.SlowAccess
	case adr < 0x4000:
		return hwdefs.FastAccess
	case adr < 0x4200:
		return hwdefs.ExtraSlowAccess
	case adr < 0x6000:
		return hwdefs.FastAccess
	case adr < 0x8000:
		return hwdefs.SlowAccess
	case bank >= 0x80:
		return s.romSpeed()
	}
	return hwdefs.SlowAccess
}

// romSpeed is the speed of the upper ROM area, selected by MEMSEL.
func (s *SNES) romSpeed() hwdefs.AccessSpeed {
	return speedFor(s.fastMem)
}

// $420D
func (s *SNES) WriteMEMSEL(_, val uint8) {
	fast := hwio.GetBit8(val, 0)
	if fast != s.fastMem {
		log.ModBus.DebugZ("rom speed").
			Stringer("speed", speedFor(fast)).
			End()
	}
	s.fastMem = fast
}

func speedFor(fast bool) hwdefs.AccessSpeed {
	if fast {
		return hwdefs.FastAccess
	}
	return hwdefs.SlowAccess
}
