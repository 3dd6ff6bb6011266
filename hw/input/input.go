package input

import (
	"fmt"
	"strings"

	"snestor/emu/log"
)

// A Button identifies a button of a standard controller. The value is the
// position of the button in the serial stream, B is shifted out first.
type Button byte

const (
	B Button = iota
	Y
	Select
	Start
	Up
	Down
	Left
	Right
	A
	X
	L
	R

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"B", "Y", "Select", "Start",
	"Up", "Down", "Left", "Right",
	"A", "X", "L", "R",
}

func (b Button) String() string {
	if b >= ButtonCount {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

func (b Button) MarshalText() ([]byte, error) {
	if b >= ButtonCount {
		return nil, fmt.Errorf("invalid button %d", uint8(b))
	}
	return []byte(buttonNames[b]), nil
}

func (b *Button) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	for i, name := range buttonNames {
		if strings.EqualFold(name, s) {
			*b = Button(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized button %q", s)
}

// A Provider gives the current state of a controller, as a 16-bit word in
// serial order: bit n is set when Button(n) is pressed.
type Provider interface {
	State() uint16
}

// Held is a Provider reporting a fixed set of pressed buttons.
type Held []Button

func (h Held) State() uint16 {
	var state uint16
	for _, b := range h {
		if b < ButtonCount {
			state |= 1 << b
		}
	}
	return state
}

// Config lists the pads plugged in ports 1 and 2, extra entries are ignored.
type Config struct {
	Pads []PadConfig `toml:"pads"`
}

// Pad returns the configuration of port i.
func (cfg Config) Pad(i int) PadConfig {
	if i < len(cfg.Pads) {
		return cfg.Pads[i]
	}
	return PadConfig{}
}

type PadConfig struct {
	Plugged bool `toml:"plugged"`
	Held    Held `toml:"held"`
}

// Pad is a standard controller plugged in a serial port. While the latch line
// is high the shift register is continuously reloaded with the provider
// state; each read then shifts one bit out.
type Pad struct {
	Name     string
	Provider Provider

	// Secondary data line, wired on multitap adapters only.
	Secondary Provider

	latch  bool
	shift  uint16
	shift2 uint16
	nreads int
}

func NewPad(name string, p Provider) *Pad {
	return &Pad{Name: name, Provider: p}
}

func (p *Pad) Reset() {
	p.latch = false
	p.shift = 0
	p.shift2 = 0
	p.nreads = 0
}

func (p *Pad) SetLatch(latch bool) {
	p.latch = latch
}

// Cycle is called on every master clock step.
func (p *Pad) Cycle() {
	if !p.latch {
		return
	}
	p.shift, p.shift2 = 0, 0
	if p.Provider != nil {
		p.shift = p.Provider.State()
	}
	if p.Secondary != nil {
		p.shift2 = p.Secondary.State()
	}
	p.nreads = 0
}

// Read returns the next bit of each data line: bit 0 for the primary and bit
// 1 for the secondary line. Past the 16th bit, a standard pad returns 1s.
func (p *Pad) Read() uint8 {
	ret := uint8(p.shift&1) | uint8(p.shift2&1)<<1
	p.shift = p.shift>>1 | 0x8000
	p.shift2 >>= 1

	p.nreads++
	if p.nreads == 16 {
		log.ModInput.DebugZ("pad read complete").String("pad", p.Name).End()
	}
	return ret
}
