// Package config holds the settings of the glox driver. They come from
// Default, optionally overlaid by a YAML or TOML file, then by CLI flags.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ostnam/glox/pkg/eval"
)

const historyFileName = ".glox_history"

type Config struct {
	// Evaluate the parsed expression and print its value.
	Evaluate bool `yaml:"evaluate" toml:"evaluate"`
	// PrintAST prints the parenthesized form of the tree.
	PrintAST bool `yaml:"print_ast" toml:"print_ast"`
	// ShowTokens lists the scanned tokens, one per line.
	ShowTokens bool `yaml:"show_tokens" toml:"show_tokens"`
	// Debug dumps tokens and tree in full.
	Debug bool `yaml:"debug" toml:"debug"`
	Color bool `yaml:"color" toml:"color"`
	// Division is the name of an eval.DivisionPolicy.
	Division string `yaml:"division" toml:"division"`
	// HistoryFile is where the interactive prompt keeps its history. Empty
	// disables history.
	HistoryFile string `yaml:"history_file" toml:"history_file"`
	Prompt      string `yaml:"prompt" toml:"prompt"`
}

func Default() Config {
	cfg := Config{
		Evaluate: true,
		Division: eval.DivideToNil.String(),
		Prompt:   "> ",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, historyFileName)
	}
	return cfg
}

// Load reads the file at path on top of Default. The format is picked from
// the extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := decode(path, b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %q", path)
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(b), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("unknown keys %v", undecoded)
		}
		return nil
	default:
		return errors.Errorf("unsupported config format %q", ext)
	}
}

// Validate checks the fields that have a restricted set of values.
func (c Config) Validate() error {
	if _, err := eval.ParseDivisionPolicy(c.Division); err != nil {
		return errors.Wrap(err, "division")
	}
	return nil
}

// DivisionPolicy returns the policy named by Division. It falls back to
// eval.DivideToNil on an invalid name, which Validate reports.
func (c Config) DivisionPolicy() eval.DivisionPolicy {
	p, err := eval.ParseDivisionPolicy(c.Division)
	if err != nil {
		return eval.DivideToNil
	}
	return p
}
