package execute

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner runs an external program to completion.
//
// stdout and stderr are captured separately. A non-nil error is either a spawn failure
// or an *exec.ExitError.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run runs the program, blocking until it exits or ctx is done.
func (ExecRunner) Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}
