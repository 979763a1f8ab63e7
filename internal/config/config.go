package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Constructors.
const (
	ConstructorDefault  = "default"
	ConstructorCapacity = "capacity"
	ConstructorSequence = "sequence"
)

// Operations a scenario can run.
const (
	OpAppend    = "append"
	OpInsert    = "insert"
	OpGet       = "get"
	OpSet       = "set"
	OpRemove    = "remove"
	OpClear     = "clear"
	OpAppendAll = "append_all"
	OpInsertAll = "insert_all"
	OpContains  = "contains"
	OpIndexOf   = "index_of"
	OpIsEmpty   = "is_empty"
	OpDump      = "dump"
)

var knownOps = map[string]bool{
	OpAppend: true, OpInsert: true, OpGet: true, OpSet: true,
	OpRemove: true, OpClear: true, OpAppendAll: true, OpInsertAll: true,
	OpContains: true, OpIndexOf: true, OpIsEmpty: true, OpDump: true,
}

// Config describes how to build an array and what to do with it.
type Config struct {
	Name        string     `yaml:"name"`
	Constructor string     `yaml:"constructor"`
	Capacity    int        `yaml:"capacity"`
	Initial     []int      `yaml:"initial,omitempty"`
	StopOnError bool       `yaml:"stop_on_error"`
	Ops         []OpConfig `yaml:"ops"`
}

// OpConfig is a single scenario operation. Append with Values runs one
// append per value; Repeat runs the op that many times (zero means once).
type OpConfig struct {
	Op     string `yaml:"op"`
	Index  int    `yaml:"index,omitempty"`
	Value  int    `yaml:"value,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:        "custom",
		Constructor: ConstructorDefault,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the constructor and op names. Capacity is not checked
// here; a negative capacity is the array's own error to report.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Name, `/\`) || strings.Contains(c.Name, "..") {
		return fmt.Errorf("invalid name: %q", c.Name)
	}
	switch c.Constructor {
	case ConstructorDefault, ConstructorCapacity, ConstructorSequence:
	default:
		return fmt.Errorf("unknown constructor: %q", c.Constructor)
	}
	for i, op := range c.Ops {
		if !knownOps[op.Op] {
			return fmt.Errorf("op %d: unknown op: %q", i, op.Op)
		}
		if op.Repeat < 0 {
			return fmt.Errorf("op %d: repeat must not be negative, got %d", i, op.Repeat)
		}
	}
	return nil
}

// Clone returns a deep copy so presets can be modified safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Initial = append([]int(nil), c.Initial...)
	out.Ops = make([]OpConfig, len(c.Ops))
	for i, op := range c.Ops {
		op.Values = append([]int(nil), op.Values...)
		out.Ops[i] = op
	}
	return &out
}
