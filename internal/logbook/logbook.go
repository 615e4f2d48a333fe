// Package logbook is the run log: an append-only text file where every line
// carries a timestamp prefix and is mirrored to stdout. If the pre-existing
// file exceeds the size ceiling it is renamed to a .old sibling — checked
// exactly once, when the sink is opened.
package logbook

import (
	"fmt"
	"io"
	"os"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Sink is the shared run log. The cleanup pipeline is single-threaded, so
// writes are not locked.
type Sink struct {
	file    *os.File  // nil when the log file could not be opened
	echo    io.Writer // usually os.Stdout
	now     func() time.Time
	rotated bool
}

// Open creates the sink for path, rotating a pre-existing file larger than
// maxSize to path+".old" first. The sink is usable even on error: it
// degrades to echo-only.
func Open(path string, maxSize int64, echo io.Writer) (*Sink, error) {
	s := &Sink{echo: echo, now: time.Now}

	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return s, fmt.Errorf("rotate log: %w", err)
		}
		s.rotated = true
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return s, fmt.Errorf("open log: %w", err)
	}
	s.file = f
	return s, nil
}

// NewWriterSink builds a sink over an arbitrary writer with no backing file.
// Tests use it to capture log output.
func NewWriterSink(w io.Writer) *Sink {
	return &Sink{echo: w, now: time.Now}
}

// SetClock overrides the timestamp source.
func (s *Sink) SetClock(now func() time.Time) { s.now = now }

// Rotated reports whether the startup rotation fired.
func (s *Sink) Rotated() bool { return s.rotated }

// Logf writes one timestamped line.
func (s *Sink) Logf(format string, args ...any) {
	line := fmt.Sprintf("%s - %s\n", s.now().Format(timeLayout), fmt.Sprintf(format, args...))
	s.write([]byte(line))
}

// Warnf writes a timestamped WARNING line.
func (s *Sink) Warnf(format string, args ...any) {
	s.Logf("WARNING: %s", fmt.Sprintf(format, args...))
}

// Errorf writes a timestamped ERROR line.
func (s *Sink) Errorf(format string, args ...any) {
	s.Logf("ERROR: %s", fmt.Sprintf(format, args...))
}

// Verbatim appends text without a timestamp, ensuring a trailing newline.
// Used for captured tool output (df snapshots, command stdout).
func (s *Sink) Verbatim(text string) {
	if text == "" {
		return
	}
	if text[len(text)-1] != '\n' {
		text += "\n"
	}
	s.write([]byte(text))
}

// Writer returns a writer that appends raw bytes to the sink. External
// commands run with their stdout/stderr pointed here.
func (s *Sink) Writer() io.Writer { return sinkWriter{s} }

// Close flushes and closes the backing file.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *Sink) write(b []byte) {
	if s.file != nil {
		_, _ = s.file.Write(b)
	}
	if s.echo != nil {
		_, _ = s.echo.Write(b)
	}
}

type sinkWriter struct{ s *Sink }

func (w sinkWriter) Write(p []byte) (int, error) {
	w.s.write(p)
	return len(p), nil
}
