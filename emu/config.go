package emu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"snestor/emu/log"
	"snestor/hw/input"
)

type Config struct {
	General   GeneralConfig   `toml:"general"`
	Input     input.Config    `toml:"input"`
	Emulation EmulationConfig `toml:"emulation"`
}

type GeneralConfig struct {
	// Modules with debug logs enabled, same syntax as the --log flag.
	LogModules []string `toml:"log_modules"`
}

type EmulationConfig struct {
	Frames   int  `toml:"frames"`   // number of frames run when not specified
	Overscan bool `toml:"overscan"` // force 239-line frames
}

const defaultFrames = 60

// DefaultConfig returns the configuration used when no file exists: 2 pads
// plugged, one second of emulation.
func DefaultConfig() Config {
	return Config{
		Input: input.Config{
			Pads: []input.PadConfig{{Plugged: true}, {Plugged: true}},
		},
		Emulation: EmulationConfig{Frames: defaultFrames},
	}
}

// Check validates the configuration, fixing what can be fixed.
func (cfg *Config) Check() error {
	if _, _, err := log.ParseModules(cfg.General.LogModules); err != nil {
		return fmt.Errorf("general.log_modules: %w", err)
	}
	if cfg.Emulation.Frames <= 0 {
		log.ModEmu.Warnf("Invalid frame count %d, fallback to %d", cfg.Emulation.Frames, defaultFrames)
		cfg.Emulation.Frames = defaultFrames
	}
	if len(cfg.Input.Pads) > 2 {
		log.ModEmu.WarnZ("Extra pads ignored").Int("count", len(cfg.Input.Pads)).End()
	}
	return nil
}

// ConfigDir returns the snestor configuration directory, creating it if
// needed.
var ConfigDir = sync.OnceValues(func() (string, error) {
	dir := configdir.LocalConfig("snestor")
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
})

const cfgFilename = "config.toml"

func defaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfgFilename), nil
}

// LoadConfig loads the configuration file at path. With an empty path, the
// file is searched in the snestor config directory and the default
// configuration is returned if it doesn't exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return Config{}, err
		}
	}

	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.ModEmu.InfoZ("No config file, using defaults").String("path", path).End()
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("Unknown config key").String("key", key.String()).String("path", path).End()
	}

	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg at path, or into the snestor config directory if
// path is empty.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return err
		}
	}

	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
