package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/lintrisk/internal/risk"
)

// Source names where a resolved value came from.
type Source string

// Sources, highest priority first.
const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Defaults.
const (
	DefaultTarget = "src"
	DefaultRisk   = risk.Low
	DefaultTheme  = "default"
)

// Themes are the accepted theme names.
var Themes = []string{"default", "orca", "mono"}

// Flags holds command-line values and whether each was set explicitly.
type Flags struct {
	ConfigPath string

	Target  string
	Risk    string
	Theme   string
	NoColor bool
	Debug   bool
	ESLint  string

	TargetSet  bool
	RiskSet    bool
	ThemeSet   bool
	NoColorSet bool
	DebugSet   bool
	ESLintSet  bool
}

// Resolved is the final configuration after applying precedence.
type Resolved struct {
	ConfigFile string

	Target   string
	Risk     risk.Tier
	Theme    string
	NoColor  bool
	Debug    bool
	LogLevel string
	ESLint   string // empty means the engine default
	Rules    risk.RuleTable

	TargetSource  Source
	RiskSource    Source
	ThemeSource   Source
	NoColorSource Source
	ESLintSource  Source
}

// Resolve loads the config file and applies flags and environment on top.
func Resolve(flags Flags) (*Resolved, error) {
	path := flags.ConfigPath
	if path == "" {
		path = os.Getenv("LINTRISK_CONFIG")
	}
	file, used, err := Load(path)
	if err != nil {
		return nil, err
	}
	return resolve(flags, file, used)
}

func resolve(flags Flags, file *File, used string) (*Resolved, error) {
	r := &Resolved{ConfigFile: used, LogLevel: file.LogLevel}

	r.Target, r.TargetSource = pickString(flags.Target, flags.TargetSet, "LINTRISK_TARGET", file.Target, DefaultTarget)
	r.Theme, r.ThemeSource = pickString(flags.Theme, flags.ThemeSet, "LINTRISK_THEME", file.Theme, DefaultTheme)
	r.ESLint, r.ESLintSource = pickString(flags.ESLint, flags.ESLintSet, "LINTRISK_ESLINT", file.ESLint, "")

	riskName, riskSource := pickString(flags.Risk, flags.RiskSet, "LINTRISK_RISK", file.Risk, DefaultRisk.String())
	tier, err := risk.ParseTier(riskName)
	if err != nil {
		return nil, fmt.Errorf("%w (from %s)", err, riskSource)
	}
	r.Risk, r.RiskSource = tier, riskSource

	switch {
	case flags.NoColorSet:
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	case envBool("LINTRISK_NO_COLOR") != nil:
		r.NoColor, r.NoColorSource = *envBool("LINTRISK_NO_COLOR"), SourceEnv
	case os.Getenv("NO_COLOR") != "":
		// no-color.org: presence of any value disables color
		r.NoColor, r.NoColorSource = true, SourceEnv
	case file.NoColor:
		r.NoColor, r.NoColorSource = true, SourceFile
	default:
		r.NoColorSource = SourceDefault
	}

	switch {
	case flags.DebugSet:
		r.Debug = flags.Debug
	case envBool("LINTRISK_DEBUG") != nil:
		r.Debug = *envBool("LINTRISK_DEBUG")
	default:
		r.Debug = file.Debug
	}
	if lvl := os.Getenv("LINTRISK_LOG_LEVEL"); lvl != "" {
		r.LogLevel = lvl
	}

	if r.Rules, err = file.RuleTable(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

func pickString(flag string, flagSet bool, envKey, fileVal, def string) (string, Source) {
	if flagSet && flag != "" {
		return flag, SourceCLI
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v, SourceEnv
	}
	if fileVal != "" {
		return fileVal, SourceFile
	}
	return def, SourceDefault
}

// envBool returns nil when key is unset or not a boolean.
func envBool(key string) *bool {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil
	}
	return &b
}

func validate(r *Resolved) error {
	valid := false
	for _, name := range Themes {
		if r.Theme == name {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid theme %q (valid: %s)", r.Theme, strings.Join(Themes, ", "))
	}
	if strings.TrimSpace(r.Target) == "" {
		return fmt.Errorf("target cannot be empty")
	}
	return nil
}
