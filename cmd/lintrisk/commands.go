package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/lintrisk/internal/config"
	"github.com/dkoosis/lintrisk/internal/confirm"
	"github.com/dkoosis/lintrisk/internal/engine"
	"github.com/dkoosis/lintrisk/internal/fixer"
	"github.com/dkoosis/lintrisk/internal/risk"
	"github.com/dkoosis/lintrisk/internal/triage"
	"github.com/dkoosis/lintrisk/internal/version"
	"github.com/dkoosis/lintrisk/pkg/mapper"
	"github.com/dkoosis/lintrisk/pkg/render"
	"github.com/dkoosis/lintrisk/pkg/sarif"
)

const formatSARIF = "sarif"

func (a *app) engine() engine.Engine {
	if a.from != "" {
		return &engine.Recorded{Path: a.from}
	}
	return engine.NewESLint(strings.Fields(a.cfg.ESLint))
}

func (a *app) classifier() *risk.Classifier {
	return risk.NewClassifier(a.cfg.Rules)
}

func (a *app) mapperOptions(detailed bool) mapper.Options {
	base, _ := os.Getwd()
	return mapper.Options{Target: a.cfg.Target, Detailed: detailed, Base: base}
}

func (a *app) renderer(format string) (render.Renderer, error) {
	theme := render.ThemeByName(a.cfg.Theme)
	if a.cfg.NoColor {
		theme = theme.WithoutColor()
	}
	return render.ForFormat(format, isTTY(a.stdout), theme, termWidth(a.stdout))
}

// analyze runs one read-only pass and classifies the result.
func (a *app) analyze(ctx context.Context) (*triage.Analysis, error) {
	slog.Debug("config resolved",
		"file", a.cfg.ConfigFile,
		"target", a.cfg.Target, "target_source", a.cfg.TargetSource,
		"eslint_source", a.cfg.ESLintSource)
	reports, err := a.engine().Lint(ctx, []string{a.cfg.Target}, false)
	if err != nil {
		return nil, fmt.Errorf("lint %s: %w", a.cfg.Target, err)
	}
	return triage.Aggregate(a.classifier(), triage.FilesWithIssues(reports)), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [path]",
		Short: "Classify lint issues by risk and print JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.stderr, "Analyzing lint issues...")
			an, err := a.analyze(cmd.Context())
			if err != nil {
				fmt.Fprintf(a.stderr, "Analysis failed: %v\n", err)
				_ = writeJSON(a.stdout, mapper.AnalyzeFailure(err))
				return errReported
			}

			s := an.Summary
			fmt.Fprintf(a.stderr, "Found issues in %d files\n", s.Files)
			fmt.Fprintf(a.stderr, "  HIGH: %d issues\n  MEDIUM: %d issues\n  LOW: %d issues\n", s.High, s.Medium, s.Low)
			fmt.Fprintf(a.stderr, "  Total: %d issues in %d files\n", s.Total, s.Files)
			return writeJSON(a.stdout, mapper.AnalyzePayload(an))
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	var (
		detailed bool
		asJSON   bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Print a human-readable risk report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r render.Renderer
			if !asJSON && format != formatSARIF {
				var err error
				if r, err = a.renderer(format); err != nil {
					return err
				}
			}

			an, err := a.analyze(cmd.Context())
			if err != nil {
				return fmt.Errorf("report generation failed: %w", err)
			}
			opts := a.mapperOptions(detailed)

			switch {
			case asJSON:
				return writeJSON(a.stdout, mapper.ReportPayload(an, opts))
			case format == formatSARIF:
				_, err := sarif.Write(a.stdout, mapper.ToSARIF(an, version.Version, opts))
				return err
			default:
				_, err := fmt.Fprint(a.stdout, r.Render(mapper.FromAnalysis(an, opts)))
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "list every MEDIUM issue instead of per-file counts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&format, "format", render.FormatAuto, "output format: auto, terminal, llm, sarif")
	return cmd
}

func (a *app) fixCommand() *cobra.Command {
	var (
		dryRun bool
		force  bool
		asJSON bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Apply auto-fixes for issues at or below a risk level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.from != "" {
				return fmt.Errorf("--from cannot be used with fix: %w", engine.ErrFixUnsupported)
			}
			r, err := a.renderer(format)
			if err != nil {
				return err
			}

			ceiling := a.cfg.Risk
			mode := ""
			if dryRun {
				mode = " (DRY RUN)"
			}
			fmt.Fprintf(a.stderr, "lintrisk fix: %s RISK%s\ntarget: %s\n\n", ceiling, mode, a.cfg.Target)

			opts := a.mapperOptions(false)
			f := fixer.New(a.engine(), a.classifier())
			f.Progress = a.stderr
			f.DisplayPath = func(p string) string { return mapper.RelPath(opts.Base, p) }
			if !dryRun && !force && isTTY(a.stdin) {
				f.Confirm = func(ctx context.Context, fixes []triage.FileFix) (bool, error) {
					lines := make([]string, 0, len(fixes))
					for _, fix := range fixes {
						lines = append(lines, fmt.Sprintf("  %s  (%s)", f.DisplayPath(fix.Path), strings.Join(fix.Rules, ", ")))
					}
					title := fmt.Sprintf("Write fixes to %d files?", len(fixes))
					return confirm.Ask(ctx, a.stdin, a.stderr, title, lines)
				}
			}

			res, err := f.Run(cmd.Context(), fixer.Options{
				Paths:   []string{a.cfg.Target},
				Ceiling: ceiling,
				DryRun:  dryRun,
			})
			if errors.Is(err, fixer.ErrDeclined) {
				fmt.Fprintln(a.stderr, "Aborted. No files were written.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}
			if asJSON {
				return writeJSON(a.stdout, mapper.FixPayload(res, opts))
			}
			_, err = fmt.Fprint(a.stdout, r.Render(mapper.FromFix(res, opts)))
			return err
		},
	}
	cmd.Flags().StringVar(&a.flags.Risk, "risk", "", "fix issues at or below this risk: low, medium, high (default low)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be fixed without writing files")
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the fix result as JSON")
	cmd.Flags().StringVar(&format, "format", render.FormatAuto, "output format: auto, terminal, llm")
	return cmd
}

func (a *app) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			table := a.cfg.Rules
			out := struct {
				Rules config.Rules `yaml:"rules"`
			}{config.Rules{
				Low:    table.Rules(risk.Low),
				Medium: table.Rules(risk.Medium),
				High:   table.Rules(risk.High),
			}}
			if a.cfg.ConfigFile != "" {
				fmt.Fprintf(a.stdout, "# config: %s\n", a.cfg.ConfigFile)
			}
			enc := yaml.NewEncoder(a.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode rules: %w", err)
			}
			if err := enc.Close(); err != nil {
				return err
			}
			for _, d := range table.Duplicates() {
				fmt.Fprintf(a.stdout, "# duplicate: %s listed under %v, classified %s\n", d.Rule, d.Tiers, d.Tiers[0])
			}
			return nil
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.stdout, version.String())
			return err
		},
	}
}
