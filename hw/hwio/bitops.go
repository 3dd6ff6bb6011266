package hwio

func GetBit8(v uint8, n uint) bool {
	return GetBiti8(v, n) != 0
}

func GetBiti8(v uint8, n uint) uint8 {
	return v >> n & 0x01
}

// Bool8 converts b to 0 or 1.
func Bool8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Lo8 and Hi8 split a 16-bit register into its bytes.
func Lo8(v uint16) uint8 { return uint8(v) }
func Hi8(v uint16) uint8 { return uint8(v >> 8) }

// SetLo8 replaces the low byte of v.
func SetLo8(v *uint16, b uint8) {
	*v = *v&0xff00 | uint16(b)
}

// SetHi8 replaces the high byte of v.
func SetHi8(v *uint16, b uint8) {
	*v = *v&0x00ff | uint16(b)<<8
}
