// Package config handles configuration loading and resolution for lintrisk.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--risk, --theme, --no-color, --debug, --config)
//  2. Environment variables (LINTRISK_RISK, LINTRISK_THEME, NO_COLOR, ...)
//  3. YAML config file (.lintrisk.yaml in the working directory or
//     ~/.config/lintrisk/.lintrisk.yaml)
//  4. Hardcoded defaults
//
// # Rule Tables
//
// The rules section of the file layers onto the built-in rule table: a
// rule listed in the file is moved to the tier the file names. With
// replace_default_rules the built-in table is ignored entirely. A rule
// listed under more than one tier of the file is reported as a warning,
// or rejected when strict_rules is set.
//
// # Environment Variables
//
//   - LINTRISK_CONFIG: path to the config file
//   - LINTRISK_TARGET: default lint target
//   - LINTRISK_RISK: default fix ceiling (low, medium, high)
//   - LINTRISK_THEME: default, orca or mono
//   - LINTRISK_ESLINT: engine command line, e.g. "pnpm exec eslint"
//   - LINTRISK_NO_COLOR or NO_COLOR: disable colors
//   - LINTRISK_DEBUG: enable debug logging
//   - LINTRISK_LOG_LEVEL: debug, info, warn or error
package config
