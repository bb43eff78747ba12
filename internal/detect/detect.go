// Package detect sniffs recorded lint output to determine its format.
package detect

import (
	"encoding/json"
)

// Format represents a recognized lint report format.
type Format int

const (
	Unknown    Format = iota
	ESLintJSON        // ESLint `--format json` array
	SARIF             // SARIF 2.1.0 JSON document
)

func (f Format) String() string {
	switch f {
	case ESLintJSON:
		return "eslint-json"
	case SARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// Sniff examines input to determine its format.
func Sniff(data []byte) Format {
	// Trim leading whitespace
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		if isESLintJSON(data) {
			return ESLintJSON
		}
	case '{':
		if isSARIF(data) {
			return SARIF
		}
	}
	return Unknown
}

func isSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}

func isESLintJSON(data []byte) bool {
	var probe []struct {
		FilePath *string           `json:"filePath"`
		Messages []json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	// An empty run is still a valid report.
	if len(probe) == 0 {
		return true
	}
	return probe[0].FilePath != nil && probe[0].Messages != nil
}
