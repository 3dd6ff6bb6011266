package hw

import (
	"snestor/emu/log"
	"snestor/hw/hwdefs"
)

// RunFrame runs the processor until the beam has left the post-frame lines
// and come back to them, that is for one full frame, then catches up the
// sound unit.
func (s *SNES) RunFrame() {
	// TODO: handle DMA transfers spanning the whole vblank (240-261).
	for s.VPos >= hwdefs.OverscanVblankLine {
		s.CPU.RunOpcode()
	}
	for s.VPos < hwdefs.OverscanVblankLine {
		s.CPU.RunOpcode()
	}
	s.catchupAPU()
}

// RunCycles advances the clock by n master cycles. Crossing the refresh
// position stalls for 40 extra cycles.
func (s *SNES) RunCycles(n int) {
	if int(s.HPos)+n >= hwdefs.RefreshHPos && s.HPos < hwdefs.RefreshHPos {
		log.ModSched.DebugZ("dram refresh").
			Int("vpos", int(s.VPos)).
			Int("hpos", int(s.HPos)).
			End()
		n += hwdefs.RefreshCycles
	}
	for range n / hwdefs.CyclesPerStep {
		s.runCycle()
	}
}

// SyncCycles runs up to the next multiple of n master cycles. An already
// aligned clock runs for a full n cycles.
func (s *SNES) SyncCycles(n int) {
	if n <= 0 {
		return
	}
	s.RunCycles(n - int(s.Cycles%uint64(n)))
}

// Step runs a single 2-cycle step, without refresh accounting.
func (s *SNES) Step() {
	s.runCycle()
}

func (s *SNES) runCycle() {
	s.apuDebt.accumulate(hwdefs.CyclesPerStep)
	s.Cycles += hwdefs.CyclesPerStep

	s.Input[0].Cycle()
	s.Input[1].Cycle()

	s.checkTimerIRQ()

	switch s.HPos {
	case 0:
		// end of hblank, most vertical events happen here.
		s.checkVblank()
	case hwdefs.RenderHPos:
		// render mid-line, so that mid-frame register writes land close
		// enough to where they do on hardware.
		if s.irq.state != Vblank {
			s.PPU.RunLine(int(s.VPos))
		}
	case hwdefs.HblankHPos:
		s.DMA.RequestHDMARun()
	}

	s.joy.tick(hwdefs.CyclesPerStep)

	// TODO: line 240 of odd frames is 4 cycles shorter, and even interlaced
	// frames have an extra line.
	s.HPos += hwdefs.CyclesPerStep
	if s.HPos == hwdefs.DotsPerLine {
		s.HPos = 0
		s.VPos++
		if s.VPos == hwdefs.LinesPerFrame {
			s.VPos = 0
			s.Frames++
		}
	}
}
