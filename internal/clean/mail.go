package clean

import (
	"os"
	"path/filepath"
	"time"
)

// actionStaleMail prunes spool mail older than the configured age, only in
// spool directories that exist.
func actionStaleMail(e *Env) error {
	found := false
	for _, dir := range e.Paths.MailDirs {
		if !dirPresent(dir) {
			continue
		}
		found = true
		dir := dir
		if err := e.Gate("prune mail older than "+e.Cfg.MailMaxAge.String()+" in "+dir, false, func() error {
			return pruneOldMail(e, dir)
		}); err != nil {
			return err
		}
	}
	if !found {
		e.Log.Logf("no mail spool found, skipping")
	}
	return nil
}

func pruneOldMail(e *Env, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-e.Cfg.MailMaxAge)
	var pruned int
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			e.Log.Warnf("remove %s: %v", path, err)
			continue
		}
		pruned++
	}

	e.Log.Logf("pruned %d stale mail file(s) from %s", pruned, dir)
	return nil
}
