package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds everything that controls a run. A YAML file may supply it;
// command-line flags override the file.
type config struct {
	// Prec is the precision in bits for built-in functions.
	Prec uint `yaml:"prec"`
	// Fmt is the fmt verb for numeric results.
	Fmt string `yaml:"fmt"`
	// Funcs enables the built-in functions.
	Funcs bool `yaml:"funcs"`
	Show  show `yaml:"show"`
	// Exprs are expressions to evaluate before any others.
	Exprs []string `yaml:"expressions"`
}

// show selects the renderings printed before each result.
type show struct {
	RPN   bool `yaml:"rpn"`
	Infix bool `yaml:"infix"`
	Tree  bool `yaml:"tree"`
	Dump  bool `yaml:"dump"`
}

func defaultConfig() config {
	return config{Prec: 64, Fmt: "%g"}
}

// loadConfig reads a YAML config over the defaults. An empty name means no
// file.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", name, err)
	}
	if cfg.Fmt == "" {
		cfg.Fmt = "%g"
	}
	return cfg, nil
}

// merge applies command-line settings over cfg. Toggles can only be turned
// on; numbers and strings apply when they differ from their zero value.
func (cfg config) merge(c *cli) config {
	if c.Prec != 0 {
		cfg.Prec = c.Prec
	}
	if c.Fmt != "" {
		cfg.Fmt = c.Fmt
	}
	cfg.Funcs = cfg.Funcs || c.Funcs
	cfg.Show.RPN = cfg.Show.RPN || c.RPN
	cfg.Show.Infix = cfg.Show.Infix || c.Infix
	cfg.Show.Tree = cfg.Show.Tree || c.Tree
	cfg.Show.Dump = cfg.Show.Dump || c.Dump
	return cfg
}
