package hw

import (
	"snestor/emu/log"
	"snestor/hw/hwio"
)

// initBus builds the register tables: B-bus, internal CPU registers and DMA
// registers.
func (s *SNES) initBus() {
	s.bbus = hwio.NewTable("bbus", 0x00, 0x100)
	s.bbus.MapDevice(0x00, &hwio.Device{
		Name:    "ppu",
		Size:    0x40,
		ReadCb:  func(addr uint16) uint8 { return s.PPU.Read(uint8(addr)) },
		WriteCb: func(addr uint16, val uint8) { s.PPU.Write(uint8(addr), val) },
	})
	s.bbus.MapDevice(0x40, &hwio.Device{
		Name:    "apuio",
		Size:    0x40,
		ReadCb:  s.ReadAPUIO,
		PeekCb:  s.PeekAPUIO,
		WriteCb: s.WriteAPUIO,
	})
	s.mapRegs(s.bbus, 0x80, []hwio.Reg8{
		{Name: "WMDATA", ReadCb: s.ReadWMDATA, PeekCb: s.PeekWMDATA, WriteCb: s.WriteWMDATA},
		{Name: "WMADDL", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWMADDL},
		{Name: "WMADDM", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWMADDM},
		{Name: "WMADDH", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWMADDH},
	})

	s.regs = hwio.NewTable("cpuregs", 0x4200, 0x20)
	s.mapRegs(s.regs, 0x4200, []hwio.Reg8{
		{Name: "NMITIMEN", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteNMITIMEN},
		{Name: "WRIO", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRIO},
		{Name: "WRMPYA", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRMPYA},
		{Name: "WRMPYB", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRMPYB},
		{Name: "WRDIVL", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRDIVL},
		{Name: "WRDIVH", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRDIVH},
		{Name: "WRDIVB", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteWRDIVB},
		{Name: "HTIMEL", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteHTIMEL},
		{Name: "HTIMEH", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteHTIMEH},
		{Name: "VTIMEL", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteVTIMEL},
		{Name: "VTIMEH", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteVTIMEH},
		{Name: "MDMAEN", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteMDMAEN},
		{Name: "HDMAEN", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteHDMAEN},
		{Name: "MEMSEL", Flags: hwio.WriteOnlyFlag, WriteCb: s.WriteMEMSEL},
	})
	s.mapRegs(s.regs, 0x4210, []hwio.Reg8{
		{Name: "RDNMI", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDNMI, PeekCb: s.PeekRDNMI},
		{Name: "TIMEUP", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadTIMEUP, PeekCb: s.PeekTIMEUP},
		{Name: "HVBJOY", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadHVBJOY, PeekCb: s.ReadHVBJOY},
		{Name: "RDIO", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDIO, PeekCb: s.ReadRDIO},
		{Name: "RDDIVL", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDDIVL, PeekCb: s.ReadRDDIVL},
		{Name: "RDDIVH", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDDIVH, PeekCb: s.ReadRDDIVH},
		{Name: "RDMPYL", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDMPYL, PeekCb: s.ReadRDMPYL},
		{Name: "RDMPYH", Flags: hwio.ReadOnlyFlag, ReadCb: s.ReadRDMPYH, PeekCb: s.ReadRDMPYH},
	})
	s.regs.MapDevice(0x4218, &hwio.Device{
		Name:   "JOY",
		Size:   8,
		Flags:  hwio.ReadOnlyFlag,
		ReadCb: s.ReadJOY,
		PeekCb: s.ReadJOY,
	})

	s.dmaio = hwio.NewTable("dma", 0x4300, 0x80)
	s.dmaio.MapDevice(0x4300, &hwio.Device{
		Name:    "dma",
		Size:    0x80,
		ReadCb:  func(addr uint16) uint8 { return s.DMA.Read(addr) },
		PeekCb:  func(addr uint16) uint8 { return s.DMA.Read(addr) },
		WriteCb: func(addr uint16, val uint8) { s.DMA.Write(addr, val) },
	})
}

// mapRegs maps regs at consecutive addresses starting at addr.
func (s *SNES) mapRegs(t *hwio.Table, addr uint16, regs []hwio.Reg8) {
	for i := range regs {
		t.MapReg8(addr+uint16(i), &regs[i])
	}
}

// $4201: a 1 to 0 transition of bit 7 latches the pixel unit H/V counters,
// through a read of SLHV ($2137).
func (s *SNES) WriteWRIO(_, val uint8) {
	latch := hwio.GetBit8(val, 7)
	if !latch && s.ppuLatch {
		s.PPU.Read(0x37)
	}
	s.ppuLatch = latch
}

// $4213
func (s *SNES) ReadRDIO(_ uint8) uint8 {
	return hwio.Bool8(s.ppuLatch) << 7
}

// $420B
func (s *SNES) WriteMDMAEN(_, val uint8) {
	log.ModDMA.DebugZ("start dma").Hex8("channels", val).End()
	s.DMA.Start(val, false)
}

// $420C
func (s *SNES) WriteHDMAEN(_, val uint8) {
	log.ModDMA.DebugZ("enable hdma").Hex8("channels", val).End()
	s.DMA.Start(val, true)
}
