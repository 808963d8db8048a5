package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/graphalith"
)

// config holds the settings of the calculator. Every field can come from the
// YAML config file or from the flag of the same name.
type config struct {
	Left     bool   `yaml:"left"`
	MaxDepth int    `yaml:"maxdepth"`
	Dump     bool   `yaml:"dump"`
	History  string `yaml:"history"`
}

func defaultConfig() *config {
	return &config{
		MaxDepth: graphalith.DefaultMaxDepth,
		History:  "~/.graphalith_history",
	}
}

// loadConfig reads a YAML config file. Settings missing from the file keep
// their defaults.
func loadConfig(name string) (*config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (*config, error) {
	cfg := defaultConfig()
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// set copies the setting for the named flag from src.
func (c *config) set(name string, src *config) {
	switch name {
	case "left":
		c.Left = src.Left
	case "maxdepth":
		c.MaxDepth = src.MaxDepth
	case "dump":
		c.Dump = src.Dump
	case "history":
		c.History = src.History
	}
}

// options converts the config to expression options. Input from a person is
// always normalized and evaluated immediately.
func (c *config) options() []graphalith.Option {
	opts := []graphalith.Option{
		graphalith.AutoFormat(),
		graphalith.AutoEvaluate(),
		graphalith.MaxDepth(c.MaxDepth),
	}
	if c.Left {
		opts = append(opts, graphalith.LeftAssociative())
	}
	return opts
}
