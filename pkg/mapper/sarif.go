package mapper

import (
	"github.com/dkoosis/lintrisk/internal/triage"
	"github.com/dkoosis/lintrisk/pkg/lint"
	"github.com/dkoosis/lintrisk/pkg/sarif"
)

// RiskProperty is the SARIF result property carrying the risk tier.
const RiskProperty = "risk"

// ToSARIF exports every classified issue, highest tier first, with the
// tier attached as a result property.
func ToSARIF(a *triage.Analysis, toolVersion string, opts Options) *sarif.Document {
	b := sarif.NewBuilder("lintrisk", toolVersion)
	for _, is := range a.All() {
		level := "warning"
		if is.Severity == lint.SeverityError {
			level = "error"
		}
		b.AddResult(is.Rule(), level, is.Message, opts.path(is.Path), is.Line, is.Column).
			Property(RiskProperty, is.Tier.String())
	}
	return b.Document()
}
