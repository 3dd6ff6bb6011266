package hw

import "snestor/hw/hwio"

// mathUnit is the 8x8 multiplier and 16/8 divider. Results are available
// immediately, the hardware delay is not emulated.
type mathUnit struct {
	multiplyA      uint8
	multiplyResult uint16 // product, or remainder after a division
	divideA        uint16 // dividend
	divideResult   uint16 // quotient
}

func (m *mathUnit) reset() {
	*m = mathUnit{
		multiplyA:      0xff,
		multiplyResult: 0xfe01,
		divideA:        0xffff,
		divideResult:   0x0101,
	}
}

func (m *mathUnit) multiply(b uint8) {
	m.multiplyResult = uint16(m.multiplyA) * uint16(b)
}

// divide by zero gives a quotient of 0xFFFF and leaves the dividend as
// remainder.
func (m *mathUnit) divide(b uint8) {
	if b == 0 {
		m.divideResult = 0xffff
		m.multiplyResult = m.divideA
		return
	}
	m.divideResult = m.divideA / uint16(b)
	m.multiplyResult = m.divideA % uint16(b)
}

// $4202
func (s *SNES) WriteWRMPYA(_, val uint8) { s.math.multiplyA = val }

// $4203
func (s *SNES) WriteWRMPYB(_, val uint8) { s.math.multiply(val) }

// $4204
func (s *SNES) WriteWRDIVL(_, val uint8) { hwio.SetLo8(&s.math.divideA, val) }

// $4205
func (s *SNES) WriteWRDIVH(_, val uint8) { hwio.SetHi8(&s.math.divideA, val) }

// $4206
func (s *SNES) WriteWRDIVB(_, val uint8) { s.math.divide(val) }

// $4214
func (s *SNES) ReadRDDIVL(_ uint8) uint8 { return hwio.Lo8(s.math.divideResult) }

// $4215
func (s *SNES) ReadRDDIVH(_ uint8) uint8 { return hwio.Hi8(s.math.divideResult) }

// $4216
func (s *SNES) ReadRDMPYL(_ uint8) uint8 { return hwio.Lo8(s.math.multiplyResult) }

// $4217
func (s *SNES) ReadRDMPYH(_ uint8) uint8 { return hwio.Hi8(s.math.multiplyResult) }
