package log

import (
	"fmt"
	"strings"
)

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// Standard modules of the emulator core. Additional modules can be registered
// through NewModule by packages living outside of the core.
const (
	ModEmu Module = iota + 1
	ModSched
	ModBus
	ModHwIo
	ModIRQ
	ModJoy
	ModAPU
	ModDMA
	ModInput

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask = 0

var modNames = []string{
	"<error>", "emu", "sched", "bus", "hwio", "irq", "joy", "apu", "dma", "input",
}

func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	name = strings.TrimSpace(name)
	for idx, s := range modNames {
		if idx != 0 && s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

// ModuleNames returns the names of all registered modules.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return modNames[0]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// printf-like family

func (mod Module) Debugf(format string, args ...any) { mod.printf(DebugLevel, format, args...) }
func (mod Module) Infof(format string, args ...any)  { mod.printf(InfoLevel, format, args...) }
func (mod Module) Warnf(format string, args ...any)  { mod.printf(WarnLevel, format, args...) }
func (mod Module) Errorf(format string, args ...any) { mod.printf(ErrorLevel, format, args...) }

// Fast, allocation-free builders. A nil *EntryZ is returned when the level is
// disabled for the module, all EntryZ methods are no-ops on nil.

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if mod.Enabled(lvl) {
		e := NewEntryZ()
		e.lvl = lvl
		e.msg = msg
		e.mod = mod
		return e
	}
	return nil
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }

// ParseModules converts a list of module names into a debug mask. "all"
// selects every module; "no" turns logging off and can't be combined with
// anything else.
func ParseModules(names []string) (mask ModuleMask, off bool, err error) {
	all := false
	for _, name := range names {
		switch name = strings.TrimSpace(name); name {
		case "":
		case "all":
			all = true
		case "no":
			off = true
		default:
			mod, ok := ModuleByName(name)
			if !ok {
				return 0, false, fmt.Errorf("unknown log module %s", name)
			}
			mask |= mod.Mask()
		}
	}

	if off {
		if all {
			return 0, false, fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if mask != 0 {
			return 0, false, fmt.Errorf("cannot combine 'no' with other log modules")
		}
		return 0, true, nil
	}
	if all {
		mask = ModuleMaskAll
	}
	return mask, false, nil
}
