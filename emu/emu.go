package emu

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"

	"snestor/emu/log"
	"snestor/hw"
	"snestor/hw/input"
)

// Emulator drives a console core with headless collaborators. Without a
// processor plugged in, the core spends every opcode slot idling, which is
// enough to exercise the timing, interrupt and auto-joypad logic.
type Emulator struct {
	SNES *hw.SNES

	ppu    *headlessPPU
	apu    *headlessAPU
	pads   [2]*input.Pad
	frames uint64 // frames run since power up
}

// PowerUp creates the console and plugs the configured pads.
func PowerUp(cfg Config) (*Emulator, error) {
	e := &Emulator{
		ppu: &headlessPPU{forceOverscan: cfg.Emulation.Overscan},
		apu: &headlessAPU{},
	}

	devs := hw.Devices{
		APU: e.apu,
		PPU: e.ppu,
	}
	for i := range e.pads {
		pcfg := cfg.Input.Pad(i)
		if !pcfg.Plugged {
			continue
		}
		e.pads[i] = input.NewPad(fmt.Sprintf("pad%d", i+1), pcfg.Held)
		devs.Input[i] = e.pads[i]
	}

	snes, err := hw.New(devs)
	if err != nil {
		return nil, fmt.Errorf("power up failed: %w", err)
	}
	e.SNES = snes

	log.ModEmu.InfoZ("Power up").
		Bool("pad1", e.pads[0] != nil).
		Bool("pad2", e.pads[1] != nil).
		Bool("overscan", cfg.Emulation.Overscan).
		End()
	return e, nil
}

// Pad returns the pad plugged in port i (0 or 1), or nil.
func (e *Emulator) Pad(i int) *input.Pad { return e.pads[i] }

// RunFrames runs n frames. If trace is not nil, a JSON snapshot of the
// timing state is written to it after each frame, one per line. The context
// is only checked between frames.
func (e *Emulator) RunFrames(ctx context.Context, n int, trace io.Writer) error {
	var enc jx.Encoder
	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.SNES.RunFrame()
		e.frames++

		if trace == nil {
			continue
		}
		enc.Reset()
		tm := e.SNES.Timing()
		tm.EncodeJSON(&enc)
		if _, err := trace.Write(append(enc.Bytes(), '\n')); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
	}
	return nil
}

// Stats summarizes the work done since power up.
type Stats struct {
	Frames    uint64 // frames run
	Cycles    uint64
	Lines     uint64 // lines rendered by the pixel unit
	Vblanks   uint64
	APUCycles uint64
}

func (e *Emulator) Stats() Stats {
	return Stats{
		Frames:    e.frames,
		Cycles:    e.SNES.Cycles,
		Lines:     e.ppu.lines,
		Vblanks:   e.ppu.vblanks,
		APUCycles: e.apu.cycles,
	}
}

func (e *Emulator) Close() error {
	return e.SNES.Close()
}

// BenchResult is the outcome of Bench.
type BenchResult struct {
	Stats   []Stats
	Elapsed time.Duration
}

// FPS returns the average number of frames per second, per instance.
func (r BenchResult) FPS() float64 {
	if len(r.Stats) == 0 || r.Elapsed <= 0 {
		return 0
	}
	var frames uint64
	for _, st := range r.Stats {
		frames += st.Frames
	}
	return float64(frames) / float64(len(r.Stats)) / r.Elapsed.Seconds()
}

// Bench runs frames frames on instances independent consoles, concurrently.
// The first failure cancels the other instances.
func Bench(ctx context.Context, cfg Config, instances, frames int) (BenchResult, error) {
	res := BenchResult{Stats: make([]Stats, instances)}

	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for i := range instances {
		g.Go(func() error {
			e, err := PowerUp(cfg)
			if err != nil {
				return fmt.Errorf("instance %d: %w", i, err)
			}
			defer func() {
				if err := e.Close(); err != nil {
					log.ModEmu.ErrorZ("close failed").Int("instance", i).Error("error", err).End()
				}
			}()

			if err := e.RunFrames(ctx, frames, nil); err != nil {
				return fmt.Errorf("instance %d: %w", i, err)
			}
			res.Stats[i] = e.Stats()
			return nil
		})
	}
	err := g.Wait()
	res.Elapsed = time.Since(start)
	return res, err
}
