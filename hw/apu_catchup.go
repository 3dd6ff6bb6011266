package hw

import "snestor/emu/log"

// The sound unit runs at 32040*32 cycles per 60 frames of 1364*262 master
// cycles. Reduced, that is 2136 sound cycles every 44671 master cycles. The
// debt is kept as an exact fraction so timing is reproducible everywhere.
const (
	apuRatioNum = 2136
	apuRatioDen = 44671
)

// apuCatchUp counts sound unit cycles owed, in units of 1/apuRatioDen cycle.
type apuCatchUp struct {
	debt uint64
}

func (a *apuCatchUp) reset() { a.debt = 0 }

func (a *apuCatchUp) accumulate(masterCycles int) {
	a.debt += uint64(masterCycles) * apuRatioNum
}

// take removes and returns the whole cycles owed.
func (a *apuCatchUp) take() int {
	n := a.debt / apuRatioDen
	a.debt -= n * apuRatioDen
	return int(n)
}

// catchupAPU runs the sound unit for all the whole cycles it is owed, so that
// its state is current.
func (s *SNES) catchupAPU() {
	n := s.apuDebt.take()
	log.ModAPU.DebugZ("catch up").
		Int("cycles", n).
		Int("vpos", int(s.VPos)).
		End()
	for range n {
		s.APU.Cycle()
	}
}
