package hw

import (
	"snestor/emu/log"
	"snestor/hw/hwio"
)

// Duration of the auto-joypad sequence, in master cycles.
const autoJoyCycles = 4224

// autoJoypad holds the state of the automatic controller read performed at the
// start of vblank.
type autoJoypad struct {
	enabled bool
	timer   int
	regs    [4]uint16 // JOY1, JOY2, JOY3, JOY4
}

func (aj *autoJoypad) reset() {
	*aj = autoJoypad{}
}

func (aj *autoJoypad) enable(on bool) {
	aj.enabled = on
	if !on {
		aj.timer = 0
	}
}

func (aj *autoJoypad) busy() bool { return aj.timer > 0 }

func (aj *autoJoypad) tick(cycles int) {
	if aj.timer > 0 {
		aj.timer -= cycles
	}
}

// doAutoJoypad latches both controller ports and shifts in 16 bits from each,
// MSB first. Bit 0 of a port read goes to JOY1/JOY2, bit 1 (multitap data
// line) to JOY3/JOY4.
func (s *SNES) doAutoJoypad() {
	s.joy.timer = autoJoyCycles
	s.joy.regs = [4]uint16{}

	// TODO: the sequence is instantaneous, it should be spread over the
	// timer duration and clock the ports while doing so.
	s.Input[0].SetLatch(true)
	s.Input[1].SetLatch(true)
	s.Input[0].Cycle()
	s.Input[1].Cycle()
	s.Input[0].SetLatch(false)
	s.Input[1].SetLatch(false)

	for i := range 16 {
		shift := uint(15 - i)
		val := s.Input[0].Read()
		s.joy.regs[0] |= uint16(val&1) << shift
		s.joy.regs[2] |= uint16(val>>1&1) << shift
		val = s.Input[1].Read()
		s.joy.regs[1] |= uint16(val&1) << shift
		s.joy.regs[3] |= uint16(val>>1&1) << shift
	}

	log.ModJoy.DebugZ("auto-joypad read").
		Hex16("joy1", s.joy.regs[0]).
		Hex16("joy2", s.joy.regs[1]).
		Hex16("joy3", s.joy.regs[2]).
		Hex16("joy4", s.joy.regs[3]).
		End()
}

// $4218-$421F
func (s *SNES) ReadJOY(addr uint16) uint8 {
	reg := s.joy.regs[(addr-0x4218)/2]
	if addr&1 == 0 {
		return hwio.Lo8(reg)
	}
	return hwio.Hi8(reg)
}
