package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintrisk/internal/risk"
)

// clearEnv blanks every variable resolution reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LINTRISK_CONFIG", "LINTRISK_TARGET", "LINTRISK_RISK", "LINTRISK_THEME",
		"LINTRISK_ESLINT", "LINTRISK_NO_COLOR", "NO_COLOR", "LINTRISK_DEBUG", "LINTRISK_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		flags      Flags
		env        map[string]string
		file       File
		wantRisk   risk.Tier
		wantSource Source
	}{
		{
			name:       "default",
			wantRisk:   risk.Low,
			wantSource: SourceDefault,
		},
		{
			name:       "file over default",
			file:       File{Risk: "medium"},
			wantRisk:   risk.Medium,
			wantSource: SourceFile,
		},
		{
			name:       "env over file",
			env:        map[string]string{"LINTRISK_RISK": "HIGH"},
			file:       File{Risk: "medium"},
			wantRisk:   risk.High,
			wantSource: SourceEnv,
		},
		{
			name:       "cli over env",
			flags:      Flags{Risk: "low", RiskSet: true},
			env:        map[string]string{"LINTRISK_RISK": "high"},
			file:       File{Risk: "medium"},
			wantRisk:   risk.Low,
			wantSource: SourceCLI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			resolved, err := resolve(tt.flags, &tt.file, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantRisk, resolved.Risk)
			assert.Equal(t, tt.wantSource, resolved.RiskSource)
		})
	}
}

func TestResolve_InvalidRisk(t *testing.T) {
	clearEnv(t)
	_, err := resolve(Flags{Risk: "extreme", RiskSet: true}, &File{}, "")
	assert.ErrorContains(t, err, `invalid risk level "extreme"`)
}

func TestResolve_InvalidTheme(t *testing.T) {
	clearEnv(t)
	_, err := resolve(Flags{}, &File{Theme: "neon"}, "")
	assert.ErrorContains(t, err, "invalid theme")
}

func TestResolve_NoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")
	resolved, err := resolve(Flags{}, &File{}, "")
	require.NoError(t, err)
	assert.True(t, resolved.NoColor)
	assert.Equal(t, SourceEnv, resolved.NoColorSource)

	resolved, err = resolve(Flags{NoColor: false, NoColorSet: true}, &File{}, "")
	require.NoError(t, err)
	assert.False(t, resolved.NoColor)
	assert.Equal(t, SourceCLI, resolved.NoColorSource)
}

func TestResolve_TargetAndEngine(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINTRISK_ESLINT", "pnpm exec eslint")
	resolved, err := resolve(Flags{Target: "web", TargetSet: true}, &File{Target: "app"}, "cfg.yaml")
	require.NoError(t, err)
	assert.Equal(t, "web", resolved.Target)
	assert.Equal(t, SourceCLI, resolved.TargetSource)
	assert.Equal(t, "pnpm exec eslint", resolved.ESLint)
	assert.Equal(t, SourceEnv, resolved.ESLintSource)
	assert.Equal(t, "cfg.yaml", resolved.ConfigFile)
}

func TestResolve_Debug(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINTRISK_DEBUG", "true")
	resolved, err := resolve(Flags{}, &File{}, "")
	require.NoError(t, err)
	assert.True(t, resolved.Debug)

	resolved, err = resolve(Flags{Debug: false, DebugSet: true}, &File{Debug: true}, "")
	require.NoError(t, err)
	assert.False(t, resolved.Debug)
}

func TestResolve_StrictDuplicateIsError(t *testing.T) {
	clearEnv(t)
	f := &File{StrictRules: true, Rules: Rules{Low: []string{"x"}, Medium: []string{"x"}}}
	_, err := resolve(Flags{}, f, "")
	assert.ErrorContains(t, err, "rules:")
}
