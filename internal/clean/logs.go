package clean

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	wildcard "github.com/IGLOU-EU/go-wildcard"

	"github.com/reclaimtool/reclaim/internal/format"
)

// rotatedLogPatterns match compressed and renamed rotations of logs under
// the log directory. Numeric suffixes (syslog.1) are handled separately.
var rotatedLogPatterns = []string{"*.gz", "*.xz", "*.bz2", "*.old"}

// isRotatedLog reports whether a file name looks like logrotate output.
func isRotatedLog(name string) bool {
	for _, p := range rotatedLogPatterns {
		if wildcard.Match(p, name) {
			return true
		}
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			return true
		}
	}
	return false
}

// actionRotatedLogs removes rotated/compressed logs under the log directory
// and truncates the fixed allow-list of active logs in place.
func actionRotatedLogs(e *Env) error {
	if err := e.Gate("remove rotated logs under "+e.Paths.LogDir, false, func() error {
		return removeRotatedLogs(e)
	}); err != nil {
		return err
	}

	for _, path := range e.Paths.TruncateLogs {
		switch p, err := probePath(path); p {
		case Absent:
			continue
		case Error:
			e.Log.Warnf("cannot probe %s: %v", path, err)
			continue
		}
		path := path
		if err := e.Gate("truncate "+path, false, func() error {
			return os.Truncate(path, 0)
		}); err != nil {
			return err
		}
	}
	return nil
}

func removeRotatedLogs(e *Env) error {
	var removed int
	var freed int64

	err := filepath.WalkDir(e.Paths.LogDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isRotatedLog(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if err := os.Remove(path); err != nil {
			e.Log.Warnf("remove %s: %v", path, err)
			return nil
		}
		removed++
		freed += info.Size()
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", e.Paths.LogDir, err)
	}

	e.Log.Logf("removed %d rotated log(s), %s freed", removed, format.Bytes(freed))
	return nil
}

// actionSlowQueryLogs truncates database slow-query logs, each only when
// the file exists.
func actionSlowQueryLogs(e *Env) error {
	found := false
	for _, path := range e.Paths.SlowQueryLogs {
		if p, _ := probePath(path); p != Present {
			continue
		}
		found = true
		path := path
		if err := e.Gate("truncate "+path, false, func() error {
			return os.Truncate(path, 0)
		}); err != nil {
			return err
		}
	}
	if !found {
		e.Log.Logf("no slow query logs found")
	}
	return nil
}
