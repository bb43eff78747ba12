// Package engine runs lint engines and persists the fixes they propose.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoosis/lintrisk/pkg/lint"
)

// ErrFixUnsupported is returned when an engine cannot run in fix mode.
var ErrFixUnsupported = errors.New("engine does not support fix mode")

// Engine produces lint reports for a set of paths. With fix set, reports
// carry proposed file content for files the engine changed, and their
// diagnostics are the ones left after fixing.
type Engine interface {
	Lint(ctx context.Context, paths []string, fix bool) ([]lint.FileReport, error)
}

// Writer replaces file content.
type Writer interface {
	WriteFile(path string, content []byte) error
}

// Error describes a failed engine invocation.
type Error struct {
	Command  string
	ExitCode int // -1 when the process did not run
	Stderr   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
