package config

import "time"

// Config holds every knob for a cleanup run. It is built once from the
// command line and fixed defaults, then passed by value; nothing mutates it
// after startup.
type Config struct {
	// DryRun logs every command that would run without executing it.
	DryRun bool

	// MinFreeMB is the free-space floor on the root filesystem. A run
	// aborts before any action when free space is below this.
	MinFreeMB uint64

	// LogPath is the append-only run log. Every line is mirrored to stdout.
	LogPath string

	// MaxLogSize is the byte ceiling above which the pre-existing log is
	// rotated to a .old sibling at startup.
	MaxLogSize int64

	// JournalVacuumSize is passed to journalctl --vacuum-size.
	JournalVacuumSize string

	// LargeFileMinBytes is the audit threshold; files at or above it are
	// reported (never removed).
	LargeFileMinBytes int64

	// LargeFileTop caps how many audited files are logged.
	LargeFileTop int

	// MailMaxAge is how old spool mail must be before it is pruned.
	MailMaxAge time.Duration
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		MinFreeMB:         1024,
		LogPath:           "/var/log/reclaim.log",
		MaxLogSize:        10 * 1024 * 1024,
		JournalVacuumSize: "500M",
		LargeFileMinBytes: 100 * 1024 * 1024,
		LargeFileTop:      20,
		MailMaxAge:        7 * 24 * time.Hour,
	}
}
