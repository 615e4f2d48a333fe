package clean

import (
	"os"
	"path/filepath"
)

// actionLostFound clears recovered-file fragments out of lost+found, only
// when the directory exists.
func actionLostFound(e *Env) error {
	dir := e.Paths.LostFound
	if !dirPresent(dir) {
		e.Log.Logf("%s not present, skipping", dir)
		return nil
	}

	return e.Gate("clear "+dir, false, func() error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		var removed int
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				e.Log.Warnf("remove %s: %v", path, err)
				continue
			}
			removed++
		}
		e.Log.Logf("removed %d entries from %s", removed, dir)
		return nil
	})
}
