// lintrisk triages ESLint diagnostics by risk and applies auto-fixes only
// for the tiers you choose.
//
// Usage:
//
//	lintrisk analyze src            # JSON analysis on stdout
//	lintrisk report src --detailed  # human-readable report
//	lintrisk fix src --risk=low     # write LOW risk fixes
//	lintrisk fix --risk=medium --dry-run
//
// Offline input: --from report.json reads a saved ESLint JSON report or a
// SARIF log instead of running ESLint.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/lintrisk/internal/config"
	"github.com/dkoosis/lintrisk/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errReported marks errors whose message was already written.
var errReported = errors.New("reported")

// app carries the streams and resolved configuration for one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags config.Flags
	from  string
	cfg   *config.Resolved
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "lintrisk: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lintrisk",
		Short:         "Triage lint issues by risk and fix them selectively",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "config file (default .lintrisk.yaml)")
	pf.StringVar(&a.from, "from", "", "read a saved ESLint JSON report or SARIF log instead of running ESLint")
	pf.StringVar(&a.flags.Theme, "theme", "", "theme: default, orca, mono")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colors")
	pf.BoolVar(&a.flags.Debug, "debug", false, "enable debug logging")
	pf.StringVar(&a.flags.ESLint, "eslint", "", `ESLint command line (default "npx eslint")`)

	root.AddCommand(
		a.analyzeCommand(),
		a.reportCommand(),
		a.fixCommand(),
		a.rulesCommand(),
		a.versionCommand(),
	)
	return root
}

// setup resolves configuration and logging before any command runs, so
// configuration errors surface before the engine is invoked.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}
	fs := cmd.Flags()
	a.flags.ThemeSet = fs.Changed("theme")
	a.flags.NoColorSet = fs.Changed("no-color")
	a.flags.DebugSet = fs.Changed("debug")
	a.flags.ESLintSet = fs.Changed("eslint")
	a.flags.RiskSet = fs.Changed("risk")
	if len(args) > 0 {
		a.flags.Target, a.flags.TargetSet = args[0], true
	}

	cfg, err := config.Resolve(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	// Commands writing JSON on stdout log JSON too.
	asJSON, _ := fs.GetBool("json")
	logging.Init(a.stderr, logging.Level(cfg.Debug, cfg.LogLevel), asJSON || cmd.Name() == "analyze")
	for _, d := range cfg.Rules.Duplicates() {
		slog.Warn("rule listed under more than one tier", "rule", d.Rule, "tiers", d.Tiers, "using", d.Tiers[0])
	}
	return nil
}

// isTTY reports whether s is a terminal.
func isTTY(s any) bool {
	f, ok := s.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
