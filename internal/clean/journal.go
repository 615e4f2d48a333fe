package clean

import "github.com/reclaimtool/reclaim/internal/cmdexec"

// actionJournalVacuum trims the systemd journal down to the configured size
// ceiling. Hosts without journalctl get a logged skip.
func actionJournalVacuum(e *Env) error {
	if !cmdexec.Exists("journalctl") {
		e.Log.Logf("journalctl not found, skipping journal vacuum")
		return nil
	}
	return e.Command("journalctl --vacuum-size="+e.Cfg.JournalVacuumSize, false,
		"journalctl", "--vacuum-size="+e.Cfg.JournalVacuumSize)
}
