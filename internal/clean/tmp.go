package clean

import (
	"os"
	"path/filepath"

	wildcard "github.com/IGLOU-EU/go-wildcard"

	"github.com/reclaimtool/reclaim/internal/cmdexec"
)

// tempFilePatterns name files that get a secure wipe before the bulk
// deletion sweeps the rest of the directory.
var tempFilePatterns = []string{"*.tmp", "*.temp", "*.swp", ".#*", "sess_*"}

func matchesTempPattern(name string) bool {
	for _, p := range tempFilePatterns {
		if wildcard.Match(p, name) {
			return true
		}
	}
	return false
}

// actionTempDirs empties the temp directories. Files matching the temp
// patterns are shredded first when the tool is available; wipe failures are
// swallowed (best effort) and the plain removal still runs.
func actionTempDirs(e *Env) error {
	haveShred := cmdexec.Exists("shred")
	for _, dir := range e.Paths.TempDirs {
		if !dirPresent(dir) {
			e.Log.Logf("%s not present, skipping", dir)
			continue
		}
		dir := dir
		if err := e.Gate("clean "+dir, false, func() error {
			return cleanTempDir(e, dir, haveShred)
		}); err != nil {
			return err
		}
	}
	return nil
}

// cleanTempDir removes everything inside dir, leaving dir itself in place.
func cleanTempDir(e *Env, dir string, haveShred bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var removed int
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if haveShred && !entry.IsDir() && matchesTempPattern(entry.Name()) {
			if err := cmdexec.Run(e.Ctx, e.Log.Writer(), "shred", "-u", path); err != nil {
				e.Log.Warnf("secure wipe %s: %v", path, err)
			} else {
				removed++
				continue
			}
		}

		if err := os.RemoveAll(path); err != nil {
			e.Log.Warnf("remove %s: %v", path, err)
			continue
		}
		removed++
	}

	e.Log.Logf("removed %d entries from %s", removed, dir)
	return nil
}
