package main

import (
	"fmt"
	"os"

	"snestor/emu"
	"snestor/emu/log"
)

func main() {
	args := parseArgs(os.Args[1:])
	if args.mode == versionMode {
		fmt.Println(versionString())
		return
	}

	cfg, err := emu.LoadConfig(args.ConfigPath)
	checkf(err, "failed to load configuration")

	// Modules listed in the configuration add to those given with --log.
	mask, off, _ := log.ParseModules(cfg.General.LogModules)
	if off {
		log.Disable()
	}
	log.EnableDebugModules(mask)

	switch args.mode {
	case runMode:
		checkf(runMain(args.Run, cfg), "emulation failed")
	case benchMode:
		checkf(benchMain(args.Bench, cfg), "benchmark failed")
	case saveConfigMode:
		checkf(emu.SaveConfig(args.ConfigPath, cfg), "failed to save configuration")
	}
}
