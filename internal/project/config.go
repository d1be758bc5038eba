package project

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigName is the optional per-project configuration file, discovered
// by the same walk-up used for chain roots. The underlying tools keep
// discovering their own config files (ruff.toml, eslint.config.js,
// tsconfig.json, ...); qualhook never parses those.
const ConfigName = "qualhook.toml"

// Config controls hook behavior for a project.
type Config struct {
	Hooks  HooksConfig `toml:"hooks"`
	Python ChainConfig `toml:"python"`
	Web    ChainConfig `toml:"web"`
}

// HooksConfig carries chain-independent knobs.
type HooksConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// ChainConfig tunes one language chain.
type ChainConfig struct {
	// Launcher prefixes every tool command, e.g. ["uv", "run"] for the
	// python chain or ["npx"] for the web chain.
	Launcher []string `toml:"launcher"`
	// Disable lists tool names that must not run.
	Disable []string `toml:"disable"`
}

// Default returns the configuration used when no qualhook.toml exists.
func Default() Config {
	return Config{
		Hooks: HooksConfig{
			TimeoutSeconds: 30,
			MaxDiagnostics: 100,
		},
		Python: ChainConfig{Launcher: []string{"uv", "run"}},
		Web:    ChainConfig{Launcher: []string{"npx"}},
	}
}

// Timeout converts the configured budget to a duration.
func (c Config) Timeout() time.Duration {
	if c.Hooks.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Hooks.TimeoutSeconds) * time.Second
}

// Disabled reports whether the chain config turns a tool off.
func (c ChainConfig) Disabled(tool string) bool {
	for _, name := range c.Disable {
		if name == tool {
			return true
		}
	}
	return false
}

// LoadConfig parses a qualhook.toml, layering the file's values over
// the defaults so partial configs stay valid.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(meta.Undecoded()) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, meta.Undecoded()[0].String())
	}
	if cfg.Hooks.MaxDiagnostics <= 0 {
		cfg.Hooks.MaxDiagnostics = Default().Hooks.MaxDiagnostics
	}
	return cfg, nil
}

// DiscoverConfig walks up from startDir and loads the nearest
// qualhook.toml; absent file yields the defaults.
func DiscoverConfig(startDir string) (Config, error) {
	dir, ok, err := findUp(startDir, ConfigName)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadConfig(filepath.Join(dir, ConfigName))
}
