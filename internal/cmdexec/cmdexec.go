package cmdexec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner abstracts external command execution so tests can substitute a fake.
type Runner interface {
	Exists(name string) bool
	Run(ctx context.Context, out io.Writer, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type defaultRunner struct{}

func (defaultRunner) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes the command with stdout and stderr streamed into out.
func (defaultRunner) Run(ctx context.Context, out io.Writer, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("command %s not found", name)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

func (defaultRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("command %s not found", name)
	}
	return exec.CommandContext(ctx, name, args...).Output()
}

var runner Runner = defaultRunner{}

// SetRunner swaps the active runner. Returns a restore func.
func SetRunner(r Runner) (restore func()) {
	prev := runner
	runner = r
	return func() { runner = prev }
}

func Exists(name string) bool {
	return runner.Exists(name)
}

func Run(ctx context.Context, out io.Writer, name string, args ...string) error {
	return runner.Run(ctx, out, name, args...)
}

func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return runner.Output(ctx, name, args...)
}
