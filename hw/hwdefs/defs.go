package hwdefs

import "strconv"

const (
	SoftReset = false
	HardReset = true
)

// Video timing geometry, in master cycles and scanlines.
const (
	DotsPerLine   = 1364 // master cycles per scanline
	LinesPerFrame = 262
	CyclesPerStep = 2 // minimum schedulable unit

	CyclesPerFrame = DotsPerLine * LinesPerFrame

	VblankLine         = 225 // first vblank line of a normal frame
	OverscanVblankLine = 240 // first vblank line of an overscan frame

	RefreshHPos   = 536 // dram refresh starts here
	RefreshCycles = 40

	RenderHPos = 512  // mid-scanline render point
	HblankHPos = 1024 // start of hblank, HDMA runs here
)

const (
	WRAMSize = 0x20000
	WRAMMask = WRAMSize - 1
)

// AccessSpeed is the number of master cycles a bus access takes.
type AccessSpeed int

const (
	FastAccess      AccessSpeed = 6
	SlowAccess      AccessSpeed = 8
	ExtraSlowAccess AccessSpeed = 12
)

func (s AccessSpeed) String() string {
	switch s {
	case FastAccess:
		return "fast"
	case SlowAccess:
		return "slow"
	case ExtraSlowAccess:
		return "xslow"
	}
	return "AccessSpeed(" + strconv.Itoa(int(s)) + ")"
}
