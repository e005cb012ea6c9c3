// Package execx wraps subprocess execution for the external collaborators
// (jj, gh). It captures stdout and stderr separately and normalizes every
// failure into a *core.CollaboratorError so callers never have to inspect
// exec.ExitError themselves.
package execx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"

	"github.com/sevigo/stacksync/internal/core"
)

// Result holds the captured output of one finished subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs one external command to completion in the given directory.
// A non-zero exit status is returned as a *core.CollaboratorError together
// with the partial Result, so callers can still read stderr.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// Local is the Runner backed by os/exec.
type Local struct {
	Logger *slog.Logger
}

// NewLocal returns a Local runner. A nil logger falls back to slog.Default.
func NewLocal(logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{Logger: logger}
}

func (l *Local) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	l.Logger.DebugContext(ctx, "running command", "name", name, "args", args, "dir", dir)
	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
		return res, &core.CollaboratorError{
			Tool:   name,
			Args:   args,
			Stderr: res.Stderr,
			Err:    err,
		}
	}
	return res, nil
}

// RunJSON runs the command and unmarshals its stdout into v. Output that is
// not valid JSON counts as collaborator failure, not a silent zero value.
func RunJSON(ctx context.Context, r Runner, dir string, v any, name string, args ...string) error {
	res, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(res.Stdout), v); err != nil {
		return &core.CollaboratorError{
			Tool:   name,
			Args:   args,
			Stderr: res.Stdout,
			Err:    err,
		}
	}
	return nil
}
