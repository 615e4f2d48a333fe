package clean

import (
	"os"
	"path/filepath"

	"github.com/reclaimtool/reclaim/internal/format"
)

// actionCoreDumps removes core dump files matched by the configured globs.
// Absence is informational, never an error.
func actionCoreDumps(e *Env) error {
	return e.Gate("remove core dump files", false, func() error {
		var matches []string
		for _, g := range e.Paths.CoreGlobs {
			m, err := filepath.Glob(g)
			if err != nil {
				e.Log.Warnf("bad core glob %q: %v", g, err)
				continue
			}
			matches = append(matches, m...)
		}

		if len(matches) == 0 {
			e.Log.Logf("no core dump files found")
			return nil
		}

		var removed int
		var freed int64
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if err := os.RemoveAll(path); err != nil {
				e.Log.Warnf("remove %s: %v", path, err)
				continue
			}
			removed++
			if !info.IsDir() {
				freed += info.Size()
			}
		}
		e.Log.Logf("removed %d core dump file(s), %s freed", removed, format.Bytes(freed))
		return nil
	})
}
