package nclu

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// DefaultBinary is where Cumulus Linux installs NCLU.
const DefaultBinary = "/usr/bin/net"

// Result is the raw outcome of a single net invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is set when the process could not be started or the command
	// string could not be split.
	Err error
}

// CommandExecutor abstracts net execution for testability.
type CommandExecutor interface {
	Run(command string) Result
}

// RealExecutor runs the actual net binary.
type RealExecutor struct {
	Binary string
}

func (r *RealExecutor) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return DefaultBinary
}

// Run splits command into words with shell quoting rules and executes
// `<binary> words...`, so "commit description 'foo bar'" passes a single
// "foo bar" argument. A # is an ordinary character, not a comment.
func (r *RealExecutor) Run(command string) Result {
	args, err := shellquote.Split(command)
	if err != nil {
		return Result{ExitCode: -1, Err: fmt.Errorf("split %q: %w", command, err)}
	}

	cmd := exec.Command(r.binary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			res.Err = err
		}
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}
