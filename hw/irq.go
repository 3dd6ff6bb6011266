package hw

import (
	"snestor/emu/log"
	"snestor/hw/hwdefs"
	"snestor/hw/hwio"
)

//go:generate go tool stringer -type=VblankState

// VblankState is the phase of the frame, as seen by the vblank/NMI logic.
type VblankState uint8

const (
	ActiveDisplay VblankState = iota
	Vblank
)

// interruptTimer holds the H/V IRQ comparators and the vblank/NMI flags.
type interruptTimer struct {
	hIrqEnabled bool
	vIrqEnabled bool
	nmiEnabled  bool

	hTimer uint16 // 9 bits
	vTimer uint16 // 9 bits

	inNmi bool
	inIrq bool
	state VblankState
}

func (it *interruptTimer) reset() {
	*it = interruptTimer{
		hTimer: 0x1ff,
		vTimer: 0x1ff,
	}
}

// timerHit reports whether the enabled comparators match the beam position.
func (it *interruptTimer) timerHit(hPos, vPos uint16) bool {
	switch {
	case it.hIrqEnabled && it.vIrqEnabled:
		return vPos == it.vTimer && hPos == 4*it.hTimer
	case it.vIrqEnabled:
		return vPos == it.vTimer && hPos == 0
	case it.hIrqEnabled:
		return hPos == 4*it.hTimer
	}
	return false
}

func (s *SNES) checkTimerIRQ() {
	if !s.irq.timerHit(s.HPos, s.VPos) {
		return
	}
	log.ModIRQ.DebugZ("timer irq").
		Int("vpos", int(s.VPos)).
		Int("hpos", int(s.HPos)).
		End()
	s.irq.inIrq = true
	s.CPU.SetIRQ(true)
}

// checkVblank handles the vertical events, called at the start of each line.
func (s *SNES) checkVblank() {
	starting := false
	switch s.VPos {
	case 0:
		s.irq.state = ActiveDisplay
		s.irq.inNmi = false
		s.DMA.RequestHDMAInit()
	case hwdefs.VblankLine:
		// the pixel unit decides whether vblank starts now or at 240.
		starting = !s.PPU.CheckOverscan()
	case hwdefs.OverscanVblankLine:
		starting = s.irq.state != Vblank
	}
	if starting {
		s.startVblank()
	}
}

func (s *SNES) startVblank() {
	log.ModIRQ.DebugZ("vblank").
		Int("vpos", int(s.VPos)).
		Uint64("frame", s.Frames).
		Bool("nmi", s.irq.nmiEnabled).
		End()

	s.PPU.HandleVblank()
	s.irq.state = Vblank
	s.irq.inNmi = true
	if s.joy.enabled {
		// TODO: the sequence actually starts a little after vblank.
		s.doAutoJoypad()
	}
	if s.irq.nmiEnabled {
		s.CPU.NMI()
	}
}

// $4200
func (s *SNES) WriteNMITIMEN(_, val uint8) {
	s.joy.enable(hwio.GetBit8(val, 0))
	s.irq.hIrqEnabled = hwio.GetBit8(val, 4)
	s.irq.vIrqEnabled = hwio.GetBit8(val, 5)
	s.irq.nmiEnabled = hwio.GetBit8(val, 7)
	if !s.irq.hIrqEnabled && !s.irq.vIrqEnabled {
		s.irq.inIrq = false
		s.CPU.SetIRQ(false)
	}
	// TODO: enabling NMI during vblank while inNmi is still set should
	// trigger an NMI.
}

// $4207
func (s *SNES) WriteHTIMEL(_, val uint8) { s.irq.hTimer = s.irq.hTimer&0x100 | uint16(val) }

// $4208
func (s *SNES) WriteHTIMEH(_, val uint8) { s.irq.hTimer = s.irq.hTimer&0x0ff | uint16(val&1)<<8 }

// $4209
func (s *SNES) WriteVTIMEL(_, val uint8) { s.irq.vTimer = s.irq.vTimer&0x100 | uint16(val) }

// $420A
func (s *SNES) WriteVTIMEH(_, val uint8) { s.irq.vTimer = s.irq.vTimer&0x0ff | uint16(val&1)<<8 }

// $4210: reading clears the NMI flag.
func (s *SNES) ReadRDNMI(_ uint8) uint8 {
	val := s.PeekRDNMI(0)
	s.irq.inNmi = false
	return val
}

func (s *SNES) PeekRDNMI(_ uint8) uint8 {
	const cpuVersion = 0x02
	return hwio.Bool8(s.irq.inNmi)<<7 | cpuVersion | s.openBus&0x70
}

// $4211: reading clears the IRQ flag and releases the IRQ line.
func (s *SNES) ReadTIMEUP(_ uint8) uint8 {
	val := s.PeekTIMEUP(0)
	s.irq.inIrq = false
	s.CPU.SetIRQ(false)
	return val
}

func (s *SNES) PeekTIMEUP(_ uint8) uint8 {
	return hwio.Bool8(s.irq.inIrq)<<7 | s.openBus&0x7f
}

// $4212
func (s *SNES) ReadHVBJOY(_ uint8) uint8 {
	val := hwio.Bool8(s.joy.busy())
	val |= hwio.Bool8(s.HPos >= hwdefs.HblankHPos) << 6
	val |= hwio.Bool8(s.irq.state == Vblank) << 7
	return val | s.openBus&0x3e
}
