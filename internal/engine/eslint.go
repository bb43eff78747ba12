package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/dkoosis/lintrisk/pkg/lint"
)

// DefaultESLintCommand runs the project's local ESLint through npx.
var DefaultESLintCommand = []string{"npx", "eslint"}

// ESLint invokes the ESLint CLI and decodes its JSON formatter output.
type ESLint struct {
	Command string   // executable, e.g. "npx"
	Args    []string // leading arguments, e.g. ["eslint"]
	Dir     string   // working directory (empty = current)
	Env     []string // extra environment, appended to the process env
}

// NewESLint builds an engine from a command line such as
// []string{"npx", "eslint"}. An empty command line selects the default.
func NewESLint(commandLine []string) *ESLint {
	if len(commandLine) == 0 {
		commandLine = DefaultESLintCommand
	}
	return &ESLint{
		Command: commandLine[0],
		Args:    append([]string(nil), commandLine[1:]...),
	}
}

// Lint runs ESLint over paths. In fix mode ESLint is run with
// --fix-dry-run so nothing is written; the fixed content comes back in
// the report's Output.
func (e *ESLint) Lint(ctx context.Context, paths []string, fix bool) ([]lint.FileReport, error) {
	args := append([]string(nil), e.Args...)
	args = append(args, "--format", "json", "--no-error-on-unmatched-pattern")
	if fix {
		args = append(args, "--fix-dry-run")
	}
	args = append(args, paths...)

	cmd := exec.CommandContext(ctx, e.Command, args...)
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	if len(e.Env) > 0 {
		cmd.Env = append(cmd.Environ(), e.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	commandLine := strings.TrimSpace(e.Command + " " + strings.Join(args, " "))
	slog.Debug("running lint engine", "command", commandLine, "fix", fix)
	start := time.Now()

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &Error{Command: commandLine, ExitCode: -1, Err: err}
		}
		exitCode = exitErr.ExitCode()
		// Exit 1 means lint errors were found; the report is still valid.
		if exitCode != 1 {
			return nil, &Error{
				Command:  commandLine,
				ExitCode: exitCode,
				Stderr:   truncateOutput(stderr.Bytes(), 500),
				Err:      err,
			}
		}
	}

	reports, err := lint.ParseESLint(stdout.Bytes())
	if err != nil {
		return nil, &Error{
			Command:  commandLine,
			ExitCode: exitCode,
			Stderr:   truncateOutput(stderr.Bytes(), 500),
			Err:      fmt.Errorf("parse engine output: %w", err),
		}
	}

	slog.Debug("lint engine finished",
		"fix", fix,
		"files", len(reports),
		"exit", exitCode,
		"duration", time.Since(start).Round(time.Millisecond))
	return reports, nil
}

// truncateOutput truncates output to maxLen characters.
func truncateOutput(output []byte, maxLen int) string {
	s := strings.TrimSpace(string(output))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
