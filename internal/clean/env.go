// Package clean implements the cleanup pipeline: an ordered list of
// best-effort actions, each routed through a single dry-run/logging gate,
// bracketed by precondition checks and a before/after space report.
package clean

import (
	"context"
	"fmt"

	"github.com/reclaimtool/reclaim/internal/cmdexec"
	"github.com/reclaimtool/reclaim/internal/config"
	"github.com/reclaimtool/reclaim/internal/distro"
	"github.com/reclaimtool/reclaim/internal/logbook"
)

// Env carries everything an action needs. It is assembled once per run.
type Env struct {
	Ctx    context.Context
	Cfg    config.Config
	Distro distro.Tag
	Log    *logbook.Sink
	Paths  Paths

	warnings int
}

// NewEnv builds a run environment over the given config and log sink.
func NewEnv(ctx context.Context, cfg config.Config, tag distro.Tag, sink *logbook.Sink) *Env {
	return &Env{
		Ctx:    ctx,
		Cfg:    cfg,
		Distro: tag,
		Log:    sink,
		Paths:  DefaultPaths(),
	}
}

// Warnings reports how many non-critical failures the gate swallowed.
func (e *Env) Warnings() int { return e.warnings }

// Gate is the single dry-run/logging decorator every mutating step routes
// through. In dry-run mode it logs the would-be command and never invokes
// fn. Otherwise a failing fn either aborts the run (critical) or is logged
// and swallowed so the next action proceeds.
func (e *Env) Gate(desc string, critical bool, fn func() error) error {
	if e.Cfg.DryRun {
		e.Log.Logf("DRY RUN: Would run '%s'", desc)
		return nil
	}

	err := fn()
	if err == nil {
		return nil
	}
	if critical {
		e.Log.Errorf("%v", err)
		return err
	}
	e.warnings++
	e.Log.Warnf("%s failed (non-critical): %v", desc, err)
	return nil
}

// Command runs an external tool through the gate with its output streamed
// into the log.
func (e *Env) Command(desc string, critical bool, name string, args ...string) error {
	return e.Gate(desc, critical, func() error {
		if err := cmdexec.Run(e.Ctx, e.Log.Writer(), name, args...); err != nil {
			return fmt.Errorf("%s: %w", desc, err)
		}
		return nil
	})
}
