package lint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// eslintResult mirrors one element of ESLint's `--format json` output.
type eslintResult struct {
	FilePath            string          `json:"filePath"`
	Messages            []eslintMessage `json:"messages"`
	ErrorCount          int             `json:"errorCount"`
	WarningCount        int             `json:"warningCount"`
	FixableErrorCount   int             `json:"fixableErrorCount"`
	FixableWarningCount int             `json:"fixableWarningCount"`
	Output              *string         `json:"output,omitempty"`
}

type eslintMessage struct {
	RuleID    *string         `json:"ruleId"`
	Severity  int             `json:"severity"`
	Message   string          `json:"message"`
	Line      int             `json:"line"`
	Column    int             `json:"column"`
	EndLine   int             `json:"endLine,omitempty"`
	EndColumn int             `json:"endColumn,omitempty"`
	Fix       json.RawMessage `json:"fix,omitempty"`
}

// ReadESLint decodes ESLint `--format json` output.
func ReadESLint(r io.Reader) ([]FileReport, error) {
	dec := json.NewDecoder(r)
	var results []eslintResult
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("decode eslint json: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode eslint json: trailing data after report")
	}

	reports := make([]FileReport, 0, len(results))
	for _, res := range results {
		reports = append(reports, res.toReport())
	}
	return reports, nil
}

// ParseESLint decodes ESLint JSON held in memory.
func ParseESLint(data []byte) ([]FileReport, error) {
	return ReadESLint(bytes.NewReader(data))
}

func (res eslintResult) toReport() FileReport {
	diags := make([]Diagnostic, 0, len(res.Messages))
	for _, m := range res.Messages {
		diags = append(diags, Diagnostic{
			RuleID:    m.RuleID,
			Severity:  Severity(m.Severity),
			Message:   m.Message,
			Line:      m.Line,
			Column:    m.Column,
			EndLine:   m.EndLine,
			EndColumn: m.EndColumn,
			Fixable:   len(m.Fix) > 0 && string(m.Fix) != "null",
		})
	}
	return FileReport{
		Path:                res.FilePath,
		Diagnostics:         diags,
		ErrorCount:          res.ErrorCount,
		WarningCount:        res.WarningCount,
		FixableErrorCount:   res.FixableErrorCount,
		FixableWarningCount: res.FixableWarningCount,
		Output:              res.Output,
	}
}

// WriteESLint encodes reports in ESLint's JSON layout. Used to record a
// lint pass for later offline triage.
func WriteESLint(w io.Writer, reports []FileReport) error {
	out := make([]eslintResult, 0, len(reports))
	for _, r := range reports {
		res := eslintResult{
			FilePath:            r.Path,
			Messages:            make([]eslintMessage, 0, len(r.Diagnostics)),
			ErrorCount:          r.ErrorCount,
			WarningCount:        r.WarningCount,
			FixableErrorCount:   r.FixableErrorCount,
			FixableWarningCount: r.FixableWarningCount,
			Output:              r.Output,
		}
		for _, d := range r.Diagnostics {
			m := eslintMessage{
				RuleID:    d.RuleID,
				Severity:  int(d.Severity),
				Message:   d.Message,
				Line:      d.Line,
				Column:    d.Column,
				EndLine:   d.EndLine,
				EndColumn: d.EndColumn,
			}
			if d.Fixable {
				m.Fix = json.RawMessage(`{}`)
			}
			res.Messages = append(res.Messages, m)
		}
		out = append(out, res)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode eslint json: %w", err)
	}
	return nil
}
