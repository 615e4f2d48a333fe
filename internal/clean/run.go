package clean

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/reclaimtool/reclaim/internal/config"
	"github.com/reclaimtool/reclaim/internal/distro"
	"github.com/reclaimtool/reclaim/internal/logbook"
	"github.com/reclaimtool/reclaim/internal/report"
)

// Fatal precondition failures. The run aborts before any action executes.
var (
	ErrNotRoot           = errors.New("must be run as root")
	ErrInsufficientSpace = errors.New("insufficient disk space")
)

// Options carries the injectable probes so tests can simulate uid, free
// space, and distribution without a real system.
type Options struct {
	Euid   func() int
	FreeMB func(path string) (uint64, error)
	Distro func() distro.Tag
	Paths  *Paths
}

func (o *Options) fill() {
	if o.Euid == nil {
		o.Euid = os.Geteuid
	}
	if o.FreeMB == nil {
		o.FreeMB = report.FreeMB
	}
	if o.Distro == nil {
		o.Distro = distro.Resolve
	}
}

// Result summarizes a completed run for the caller's terminal output.
type Result struct {
	StartMB  uint64
	EndMB    uint64
	Warnings int
	Elapsed  time.Duration
}

// Run executes the full pipeline: preconditions, the ordered action set,
// and the final report. It is strictly sequential. The returned error is
// non-nil only for fatal conditions; non-critical action failures are
// logged and absorbed.
func Run(ctx context.Context, cfg config.Config, sink *logbook.Sink, opts Options) (Result, error) {
	opts.fill()
	began := time.Now()

	mode := "live"
	if cfg.DryRun {
		mode = "dry run"
	}
	sink.Logf("starting cleanup (%s)", mode)

	// Preconditions — the only critical checks in the program.
	if opts.Euid() != 0 {
		sink.Errorf("This script must be run as root")
		return Result{}, ErrNotRoot
	}

	startMB, err := opts.FreeMB("/")
	if err != nil {
		sink.Errorf("cannot measure free space: %v", err)
		return Result{}, err
	}
	if startMB < cfg.MinFreeMB {
		sink.Errorf("Insufficient disk space (%d MB free), aborting", startMB)
		return Result{}, ErrInsufficientSpace
	}

	tag := opts.Distro()
	sink.Logf("detected distribution: %s", tag)

	env := NewEnv(ctx, cfg, tag, sink)
	if opts.Paths != nil {
		env.Paths = *opts.Paths
	}

	actions := Actions()
	for i, action := range actions {
		sink.Logf("[%d/%d] %s", i+1, len(actions), action.Name)
		if err := action.Run(env); err != nil {
			// Only a critical gate surfaces an error; the run stops here.
			return Result{}, err
		}
	}

	endMB, err := opts.FreeMB("/")
	if err != nil {
		sink.Warnf("cannot measure free space after run: %v", err)
		endMB = startMB
	}

	report.Append(ctx, sink, startMB, endMB)
	sink.Logf("cleanup complete, %d warning(s)", env.Warnings())

	return Result{
		StartMB:  startMB,
		EndMB:    endMB,
		Warnings: env.Warnings(),
		Elapsed:  time.Since(began),
	}, nil
}
