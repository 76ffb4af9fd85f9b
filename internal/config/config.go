// Package config loads the shell's optional TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults for an absent file or absent keys.
const (
	DefaultStackCapacity = 32767
	DefaultDictCapacity  = 666
	DefaultPrompt        = "go-forth> "
)

// Config is the shell configuration, e.g.:
//
//	[engine]
//	stack_capacity = 1024
//	dict_capacity = 256
//	trace = false
//
//	[repl]
//	prompt = "> "
//	history_file = "/tmp/goforth.history"
type Config struct {
	Engine Engine `toml:"engine"`
	REPL   REPL   `toml:"repl"`
}

// Engine configures the evaluation engine.
type Engine struct {
	StackCapacity int  `toml:"stack_capacity"`
	DictCapacity  int  `toml:"dict_capacity"`
	Trace         bool `toml:"trace"`
}

// REPL configures the interactive shell.
type REPL struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Engine: Engine{
			StackCapacity: DefaultStackCapacity,
			DictCapacity:  DefaultDictCapacity,
		},
		REPL: REPL{Prompt: DefaultPrompt},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping cfg's values for absent keys,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("unknown key %q", undec[0].String())
	}
	return cfg.Validate()
}

// Validate rejects negative capacities.
func (cfg Config) Validate() error {
	if cfg.Engine.StackCapacity < 0 {
		return fmt.Errorf("engine.stack_capacity must not be negative, got %d", cfg.Engine.StackCapacity)
	}
	if cfg.Engine.DictCapacity < 0 {
		return fmt.Errorf("engine.dict_capacity must not be negative, got %d", cfg.Engine.DictCapacity)
	}
	return nil
}
