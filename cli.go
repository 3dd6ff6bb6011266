package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"snestor/emu/log"
)

type mode byte

const (
	runMode        mode = iota // Run the console
	benchMode                  // Run concurrent consoles, report speed
	saveConfigMode             // Write configuration file
	versionMode                // Show snestor version
)

type (
	CLI struct {
		Run        Run        `cmd:"" help:"Run the console for a number of frames. (default command)" default:"withargs"`
		Bench      Bench      `cmd:"" help:"Run several consoles concurrently and report their speed."`
		SaveConfig SaveConfig `cmd:"" help:"${saveconfig_help}" name:"save-config"`
		Version    Version    `cmd:"" help:"Show snestor version."`

		Log        logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		ConfigPath string     `name:"config" help:"${config_help}" type:"path" placeholder:"FILE"`

		mode mode
	}

	Run struct {
		Frames     int        `name:"frames" help:"Number of frames to run. (default from configuration)"`
		Overscan   bool       `name:"overscan" help:"Force 239-line frames."`
		Trace      *traceFile `name:"trace" help:"${trace_help}" placeholder:"FILE|stdout|stderr"`
		CPUProfile string     `name:"cpuprofile" help:"Write CPU profile to file." type:"path"`
	}

	Bench struct {
		Instances int `name:"instances" help:"Number of consoles run concurrently." default:"4"`
		Frames    int `name:"frames" help:"Number of frames run by each console." default:"600"`
	}

	SaveConfig struct{}
	Version    struct{}
)

var vars = kong.Vars{
	"config_help":     "Configuration file. (default: config.toml in the user config directory)",
	"saveconfig_help": "Write the configuration file, filling missing settings with defaults.",
	"trace_help":      "Write a timing snapshot after each frame, as JSON lines.",
	"log_help":        "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("snestor"),
		kong.Description("16-bit console timing core, headless runner."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "bench":
		cfg.mode = benchMode
	case "save-config":
		cfg.mode = saveConfigMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

// printHelp adds the list of log modules to kong's help.
func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(ctx.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "\nLog modules (--log mod0,mod1,...):")
	for _, name := range log.ModuleNames() {
		fmt.Fprintf(w, "  %s\tdebug logs of the %s module\n", name, name)
	}
	fmt.Fprintln(w, "  all\tenable all debug logs")
	fmt.Fprintln(w, "  no\tdisable logging, warnings included")
	return w.Flush()
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask,
// and enables the debug logs of these modules.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	var s string
	if err := ctx.Scan.PopValueInto("modules", &s); err != nil {
		return err
	}

	mask, off, err := log.ParseModules(strings.Split(s, ","))
	if err != nil {
		return err
	}
	if off {
		log.Disable()
		return nil
	}

	*lm = logModMask(mask)
	log.EnableDebugModules(mask)
	return nil
}

// traceFile is the destination of the --trace flag: a file path, or stdout
// or stderr. Files are only created when opened.
type traceFile struct {
	name string
}

// Decode implements kong.MapperValue interface.
func (f *traceFile) Decode(ctx *kong.DecodeContext) error {
	var name string
	if err := ctx.Scan.PopValueInto("file", &name); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("empty trace file name")
	}
	f.name = name
	return nil
}

func (f *traceFile) String() string { return f.name }

// open returns the trace destination. Closing a standard stream is a no-op.
func (f *traceFile) open() (io.WriteCloser, error) {
	switch f.name {
	case "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	}
	return os.Create(f.name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// checkf exits with an error message if err is not nil.
func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "snestor: %s: %v\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
