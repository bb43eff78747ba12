package sarif

import (
	"encoding/json"
	"io"
)

// Builder constructs valid SARIF 2.1.0 documents.
type Builder struct {
	doc *Document
}

// NewBuilder creates a SARIF builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		doc: &Document{
			Version: "2.1.0",
			Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
			Runs: []Run{{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: []Result{},
			}},
		},
	}
}

// AddResult adds a diagnostic result to the current run.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	r := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if file != "" {
		r.Locations = []Location{{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: file},
				Region: Region{
					StartLine:   line,
					StartColumn: col,
				},
			},
		}}
	}
	run := &b.doc.Runs[0]
	run.Results = append(run.Results, r)
	return b
}

// Property sets a property bag entry on the most recently added result.
// It is a no-op before the first AddResult.
func (b *Builder) Property(key string, value any) *Builder {
	results := b.doc.Runs[0].Results
	if len(results) == 0 {
		return b
	}
	last := &results[len(results)-1]
	if last.Properties == nil {
		last.Properties = make(map[string]any)
	}
	last.Properties[key] = value
	return b
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	return b.doc
}

// WriteTo writes the SARIF document as JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	return Write(w, b.doc)
}

// Write encodes doc as indented JSON followed by a newline.
func Write(w io.Writer, doc *Document) (int64, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
