// Package fixer runs the selective fix workflow: a read-only lint pass,
// risk selection, a fix-mode pass, and gated writes.
package fixer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dkoosis/lintrisk/internal/engine"
	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/internal/triage"
)

// ErrDeclined is returned when the confirmation hook refuses the writes.
var ErrDeclined = errors.New("fix declined")

// ConfirmFunc is asked before any file is written.
type ConfirmFunc func(ctx context.Context, fixes []triage.FileFix) (bool, error)

// Options select what a Run fixes.
type Options struct {
	Paths   []string
	Ceiling risk.Tier
	DryRun  bool
}

// Result describes a fix run. Everything except Written is identical for
// a dry run and a real run over the same input.
type Result struct {
	Ceiling  risk.Tier
	Analysis *triage.Analysis
	Eligible []triage.Issue
	Affected []triage.FileGroup // eligible issues grouped by file
	Fixes    []triage.FileFix   // files whose fixed content may be written

	NothingToFix bool
	DryRun       bool
	Written      []string
}

// Fixer wires the engine, classifier and writer together.
type Fixer struct {
	Engine     engine.Engine
	Writer     engine.Writer
	Classifier *risk.Classifier
	Confirm    ConfirmFunc // optional

	// Progress receives step-by-step status lines. Nil discards them.
	Progress io.Writer
	// DisplayPath shortens file paths in progress lines. Nil keeps them.
	DisplayPath func(string) string
}

// New creates a fixer that writes through engine.AtomicWriter.
func New(eng engine.Engine, c *risk.Classifier) *Fixer {
	return &Fixer{Engine: eng, Writer: engine.AtomicWriter{}, Classifier: c}
}

func (f *Fixer) printf(format string, args ...any) {
	if f.Progress != nil {
		fmt.Fprintf(f.Progress, format, args...)
	}
}

func (f *Fixer) display(path string) string {
	if f.DisplayPath == nil {
		return path
	}
	return f.DisplayPath(path)
}

// Run executes the workflow. A failed engine pass aborts before anything
// is written. Write failures stop at the failing file; files already
// written stay written and are listed in the returned Result.
func (f *Fixer) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{Ceiling: opts.Ceiling, DryRun: opts.DryRun}

	f.printf("Step 1: analyzing current issues\n")
	reports, err := f.Engine.Lint(ctx, opts.Paths, false)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	res.Analysis = triage.Aggregate(f.Classifier, triage.FilesWithIssues(reports))
	sum := res.Analysis.Summary
	f.printf("  total issues: %d\n  HIGH: %d\n  MEDIUM: %d\n  LOW: %d\n\n", sum.Total, sum.High, sum.Medium, sum.Low)

	res.Eligible = triage.SelectForFix(res.Analysis, opts.Ceiling)
	if len(res.Eligible) == 0 {
		res.NothingToFix = true
		slog.Debug("no eligible issues", "ceiling", opts.Ceiling)
		return res, nil
	}
	res.Affected = triage.GroupByFile(res.Eligible)
	slog.Debug("selected issues for fixing",
		"ceiling", opts.Ceiling,
		"issues", len(res.Eligible),
		"files", len(res.Affected))
	f.printf("Step 2: selected %d issues to fix (%s risk and below)\n", len(res.Eligible), opts.Ceiling)
	f.printf("  affected files: %d\n", len(res.Affected))
	for _, g := range res.Affected {
		f.printf("  - %s (%d issues)\n", f.display(g.Path), len(g.Issues))
	}

	f.printf("\nStep 3: applying fixes\n")
	fixReports, err := f.Engine.Lint(ctx, opts.Paths, true)
	if err != nil {
		return nil, fmt.Errorf("fix pass: %w", err)
	}
	res.Fixes = triage.DecideWrites(res.Analysis, res.Eligible, fixReports)

	if opts.DryRun || len(res.Fixes) == 0 {
		return res, nil
	}

	if f.Confirm != nil {
		ok, err := f.Confirm(ctx, res.Fixes)
		if err != nil {
			return res, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			return res, ErrDeclined
		}
	}

	f.printf("\nStep 4: writing %d fixed files\n", len(res.Fixes))
	for _, fix := range res.Fixes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := f.Writer.WriteFile(fix.Path, []byte(fix.Output)); err != nil {
			return res, fmt.Errorf("write fixes: %w", err)
		}
		res.Written = append(res.Written, fix.Path)
		slog.Debug("wrote fix", "file", fix.Path, "rules", fix.Rules)
	}
	return res, nil
}
