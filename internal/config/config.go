package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/lintrisk/internal/risk"
)

// FileName is the config file looked up in the working directory.
const FileName = ".lintrisk.yaml"

// File is the on-disk shape of .lintrisk.yaml.
type File struct {
	Target   string `yaml:"target,omitempty"`
	Risk     string `yaml:"risk,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
	NoColor  bool   `yaml:"no_color,omitempty"`
	Debug    bool   `yaml:"debug,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	ESLint   string `yaml:"eslint,omitempty"`

	Rules               Rules `yaml:"rules,omitempty"`
	ReplaceDefaultRules bool  `yaml:"replace_default_rules,omitempty"`
	StrictRules         bool  `yaml:"strict_rules,omitempty"`
}

// Rules lists rule identifiers per tier.
type Rules struct {
	Low    []string `yaml:"low,omitempty"`
	Medium []string `yaml:"medium,omitempty"`
	High   []string `yaml:"high,omitempty"`
}

func (r Rules) empty() bool {
	return len(r.Low) == 0 && len(r.Medium) == 0 && len(r.High) == 0
}

// Load reads the config file at path. An empty path searches the default
// locations; finding nothing yields an empty File and path "".
func Load(path string) (*File, string, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigPath()
		if path == "" {
			return &File{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &File{}, "", nil
		}
		return nil, "", fmt.Errorf("read config: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("config %s: %w", path, err)
	}
	return f, path, nil
}

// Parse decodes config YAML. Unknown keys are rejected so typos in rule
// sections do not silently fall back to defaults.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return f, nil
}

// RuleTable builds the effective rule table for f. Rules listed under more
// than one tier are an error only with strict_rules; callers report the rest
// from the table's Duplicates.
func (f *File) RuleTable() (risk.RuleTable, error) {
	own := risk.NewRuleTable(f.Rules.Low, f.Rules.Medium, f.Rules.High)

	var table risk.RuleTable
	switch {
	case f.ReplaceDefaultRules:
		table = own
	case f.Rules.empty():
		table = risk.DefaultRuleTable()
	default:
		table = risk.DefaultRuleTable().Override(own)
	}

	dups := table.Duplicates()
	if len(dups) > 0 && f.StrictRules {
		return risk.RuleTable{}, fmt.Errorf("rule %q listed under %v", dups[0].Rule, dups[0].Tiers)
	}
	return table, nil
}

// findConfigPath checks the working directory first, then the user config dir.
func findConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, "lintrisk", FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}
