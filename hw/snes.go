package hw

import (
	"errors"
	"fmt"
	"io"

	"snestor/emu/log"
	"snestor/hw/hwdefs"
	"snestor/hw/hwio"
	"snestor/hw/snapshot"
)

// SNES is the console core: it owns the master clock, the work RAM and the
// internal registers, and routes every bus access to the right device.
type SNES struct {
	CPU   Processor
	APU   SoundUnit
	DMA   DMAEngine
	PPU   PixelUnit
	Cart  Cartridge
	Input [2]ControllerPort

	RAM [hwdefs.WRAMSize]uint8

	HPos   uint16 // master cycle within the scanline, always even
	VPos   uint16 // scanline
	Frames uint64
	Cycles uint64 // master cycles since reset

	apuDebt apuCatchUp
	irq     interruptTimer
	joy     autoJoypad
	math    mathUnit

	ramAdr   uint32 // WRAM port cursor, 17 bits
	ppuLatch bool
	fastMem  bool
	openBus  uint8

	regs  *hwio.Table // $4200-$421F
	bbus  *hwio.Table // $2100-$21FF, indexed by B-bus address
	dmaio *hwio.Table // $4300-$437F
}

// New creates the console and plugs in the given devices, then performs a
// hard reset. Devices are built bottom-up: the processor comes last so that
// it can already use its bus while being constructed.
func New(devs Devices) (*SNES, error) {
	s := &SNES{}

	s.APU = devs.APU
	if s.APU == nil {
		s.APU = &nopAPU{}
	}
	s.PPU = devs.PPU
	if s.PPU == nil {
		s.PPU = nopPPU{}
	}
	s.Cart = devs.Cart
	if s.Cart == nil {
		s.Cart = openBusCart{}
	}
	for i, port := range devs.Input {
		if port == nil {
			port = unpluggedPort{}
		}
		s.Input[i] = port
	}
	s.initBus()
	s.irq.reset()

	// inert stand-ins until the real ones exist, the constructors may
	// already drive the bus. None of them needs closing.
	s.DMA = newRegsDMA()
	s.CPU = idleCPU{bus: s}

	if devs.NewDMA != nil {
		dma, err := devs.NewDMA(s)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("dma: %w", err), s.Close())
		}
		if dma == nil {
			return nil, errors.Join(errors.New("dma: constructor returned nil"), s.Close())
		}
		s.DMA = dma
	}

	if devs.NewCPU != nil {
		cpu, err := devs.NewCPU(s)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("processor: %w", err), s.Close())
		}
		if cpu == nil {
			return nil, errors.Join(errors.New("processor: constructor returned nil"), s.Close())
		}
		s.CPU = cpu
	}

	s.Reset(hwdefs.HardReset)
	return s, nil
}

// Close releases the devices implementing io.Closer, in reverse order of
// construction.
func (s *SNES) Close() error {
	return closeAll(s.APU, s.PPU, s.Cart, s.Input[0], s.Input[1], s.DMA, s.CPU)
}

func closeAll(devs ...any) error {
	var errs []error
	for i := len(devs) - 1; i >= 0; i-- {
		if c, ok := devs[i].(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Reset resets the console and all devices. Work RAM is only cleared on hard
// reset.
func (s *SNES) Reset(hard bool) {
	log.ModEmu.InfoZ("reset").Bool("hard", hard).End()

	s.CPU.Reset(hard)
	s.APU.Reset()
	s.DMA.Reset()
	s.PPU.Reset()
	s.Input[0].Reset()
	s.Input[1].Reset()
	s.Cart.Reset()

	if hard {
		clear(s.RAM[:])
	}
	s.ramAdr = 0
	s.HPos = 0
	s.VPos = 0
	s.Frames = 0
	s.Cycles = 0
	s.apuDebt.reset()
	s.irq.reset()
	s.joy.reset()
	s.math.reset()
	s.ppuLatch = false
	s.fastMem = false
	s.openBus = 0
}

// OpenBus returns the last value driven on the bus.
func (s *SNES) OpenBus() uint8 { return s.openBus }

// VblankState returns the current phase of the frame.
func (s *SNES) VblankState() VblankState { return s.irq.state }

// AutoRead returns the 4 auto-joypad registers ($4218-$421F).
func (s *SNES) AutoRead() [4]uint16 { return s.joy.regs }

// Timing returns a snapshot of the clock and interrupt state.
func (s *SNES) Timing() snapshot.Timing {
	return snapshot.Timing{
		HPos:        s.HPos,
		VPos:        s.VPos,
		Frames:      s.Frames,
		Cycles:      s.Cycles,
		Vblank:      s.irq.state == Vblank,
		InNMI:       s.irq.inNmi,
		InIRQ:       s.irq.inIrq,
		NMIEnabled:  s.irq.nmiEnabled,
		HIRQEnabled: s.irq.hIrqEnabled,
		VIRQEnabled: s.irq.vIrqEnabled,
		HTimer:      s.irq.hTimer,
		VTimer:      s.irq.vTimer,
		AutoJoyBusy: s.joy.busy(),
		AutoRead:    s.joy.regs,
		OpenBus:     s.openBus,
		WRAMAddr:    s.ramAdr,
		FastMem:     s.fastMem,
		APUDebt:     s.apuDebt.debt,
		APUDebtDen:  apuRatioDen,
	}
}
