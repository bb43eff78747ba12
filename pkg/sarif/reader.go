package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/lintrisk/pkg/lint"
)

// ReadBytes parses SARIF held in memory.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Read parses SARIF from an io.Reader.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sarif: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode sarif: trailing data after document")
	}

	// Basic validation
	if doc.Version == "" {
		return nil, fmt.Errorf("missing sarif version")
	}

	return &doc, nil
}

// FileReports converts SARIF results into per-file lint reports, in order
// of first appearance. Results without a location are grouped under
// "unknown". Notes count as warnings.
func FileReports(doc *Document) []lint.FileReport {
	index := make(map[string]int)
	var reports []lint.FileReport

	for _, run := range doc.Runs {
		for _, result := range run.Results {
			file := NormalizePath(result.File())
			if file == "" {
				file = "unknown"
			}
			i, ok := index[file]
			if !ok {
				i = len(reports)
				index[file] = i
				reports = append(reports, lint.FileReport{Path: file})
			}

			d := lint.Diagnostic{
				Message: result.Message.Text,
				Line:    result.Line(),
				Column:  result.Col(),
			}
			if result.RuleID != "" {
				d.RuleID = lint.StringPtr(result.RuleID)
			}
			if len(result.Locations) > 0 {
				region := result.Locations[0].PhysicalLocation.Region
				d.EndLine, d.EndColumn = region.EndLine, region.EndColumn
			}

			r := &reports[i]
			switch result.Level {
			case "none":
				continue
			case "error":
				d.Severity = lint.SeverityError
				r.ErrorCount++
			default:
				d.Severity = lint.SeverityWarning
				r.WarningCount++
			}
			r.Diagnostics = append(r.Diagnostics, d)
		}
	}

	return reports
}

// NormalizePath strips a file:// scheme from an artifact URI.
func NormalizePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
