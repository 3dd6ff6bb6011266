package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"text/tabwriter"

	"snestor/emu"
)

// runMain runs a single console for the configured number of frames.
func runMain(args Run, cfg emu.Config) (err error) {
	if args.Frames > 0 {
		cfg.Emulation.Frames = args.Frames
	}
	if args.Overscan {
		cfg.Emulation.Overscan = true
	}

	emulator, err := emu.PowerUp(cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, emulator.Close()) }()

	var trace io.Writer
	if args.Trace != nil {
		w, oerr := args.Trace.open()
		if oerr != nil {
			return fmt.Errorf("trace: %w", oerr)
		}
		defer func() { err = errors.Join(err, w.Close()) }()
		bw := bufio.NewWriter(w)
		defer func() { err = errors.Join(err, bw.Flush()) }()
		trace = bw
	}

	if args.CPUProfile != "" {
		f, perr := os.Create(args.CPUProfile)
		if perr != nil {
			return fmt.Errorf("failed to create cpu profile file: %w", perr)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to start cpu profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := emulator.RunFrames(ctx, cfg.Emulation.Frames, trace); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := emulator.Stats()
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "frames:\t%d\n", st.Frames)
	fmt.Fprintf(tw, "master cycles:\t%d\n", st.Cycles)
	fmt.Fprintf(tw, "lines rendered:\t%d\n", st.Lines)
	fmt.Fprintf(tw, "vblanks:\t%d\n", st.Vblanks)
	fmt.Fprintf(tw, "sound cycles:\t%d\n", st.APUCycles)
	return tw.Flush()
}

// benchMain runs independent consoles concurrently and reports their speed.
func benchMain(args Bench, cfg emu.Config) error {
	if args.Instances <= 0 || args.Frames <= 0 {
		return fmt.Errorf("instances and frames must be positive (got %d and %d)", args.Instances, args.Frames)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := emu.Bench(ctx, cfg, args.Instances, args.Frames)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "instance\tframes\tcycles\t")
	for i, st := range res.Stats {
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", i, st.Frames, st.Cycles)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d consoles, %s, %.1f frames/s per console\n", len(res.Stats), res.Elapsed.Round(1e6), res.FPS())
	return nil
}
