package cmdexec

import (
	"context"
	"io"
	"strings"
	"testing"
)

type stubRunner struct{ ran bool }

func (s *stubRunner) Exists(string) bool { return true }

func (s *stubRunner) Run(context.Context, io.Writer, string, ...string) error {
	s.ran = true
	return nil
}

func (s *stubRunner) Output(context.Context, string, ...string) ([]byte, error) {
	return []byte("stub"), nil
}

func TestSetRunnerRestores(t *testing.T) {
	stub := &stubRunner{}
	restore := SetRunner(stub)

	if err := Run(context.Background(), io.Discard, "anything"); err != nil {
		t.Fatalf("Run via stub: %v", err)
	}
	if !stub.ran {
		t.Error("stub not invoked")
	}

	restore()
	if Exists("almost-certainly-not-a-real-command-xyz") {
		t.Error("default runner found a bogus command")
	}
}

func TestDefaultRunnerMissingCommand(t *testing.T) {
	err := Run(context.Background(), io.Discard, "almost-certainly-not-a-real-command-xyz")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Run missing command = %v", err)
	}
	if _, err := Output(context.Background(), "almost-certainly-not-a-real-command-xyz"); err == nil {
		t.Error("Output missing command succeeded")
	}
}
