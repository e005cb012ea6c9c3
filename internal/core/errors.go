package core

import (
	"fmt"
	"strings"
)

// CollaboratorError reports that an external tool (jj, gh, git) was
// unreachable, exited non-zero, or produced output we could not parse.
// Stderr carries the tool's diagnostic verbatim so the CLI can surface it.
type CollaboratorError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CollaboratorError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Tool, strings.Join(e.Args, " "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// ProtocolError reports that a collaborator call succeeded but its output
// violated the expected shape, e.g. a create response without a trailing
// pull-request number.
type ProtocolError struct {
	Tool   string
	Detail string
	Output string
}

func (e *ProtocolError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Tool, e.Detail)
	if o := strings.TrimSpace(e.Output); o != "" {
		msg += fmt.Sprintf(" (output: %q)", o)
	}
	return msg
}
