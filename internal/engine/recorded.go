package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/dkoosis/lintrisk/internal/detect"
	"github.com/dkoosis/lintrisk/pkg/lint"
	"github.com/dkoosis/lintrisk/pkg/sarif"
)

// Recorded replays a lint report saved earlier, either ESLint JSON or a
// SARIF log. It ignores the requested paths and cannot fix.
type Recorded struct {
	Path string
}

// Lint reads and decodes the recorded report.
func (r *Recorded) Lint(_ context.Context, _ []string, fix bool) ([]lint.FileReport, error) {
	if fix {
		return nil, fmt.Errorf("recorded report %s: %w", r.Path, ErrFixUnsupported)
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read recorded report: %w", err)
	}
	return DecodeReport(data)
}

// DecodeReport decodes ESLint JSON or SARIF, whichever data holds.
func DecodeReport(data []byte) ([]lint.FileReport, error) {
	switch format := detect.Sniff(data); format {
	case detect.ESLintJSON:
		return lint.ParseESLint(data)
	case detect.SARIF:
		doc, err := sarif.ReadBytes(data)
		if err != nil {
			return nil, err
		}
		return sarif.FileReports(doc), nil
	default:
		return nil, fmt.Errorf("unrecognized report format (expected ESLint JSON or SARIF)")
	}
}
