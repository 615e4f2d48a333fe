package clean

// Paths collects every filesystem location the actions touch. Tests point
// these at temp directories; production uses the defaults.
type Paths struct {
	// LogDir is scanned for rotated/compressed logs.
	LogDir string

	// TruncateLogs are active logs truncated in place, each only if present.
	TruncateLogs []string

	// SlowQueryLogs are database slow logs truncated if present.
	SlowQueryLogs []string

	// TempDirs have their contents removed (the directories themselves stay).
	TempDirs []string

	// CoreGlobs are glob patterns matching core dump files.
	CoreGlobs []string

	// MailDirs are spool directories pruned of old mail.
	MailDirs []string

	// LostFound is the lost+found directory whose contents are removed.
	LostFound string

	// AuditRoot is the filesystem walked by the large-file audit.
	AuditRoot string
}

// DefaultPaths returns the production locations.
func DefaultPaths() Paths {
	return Paths{
		LogDir: "/var/log",
		TruncateLogs: []string{
			"/var/log/syslog",
			"/var/log/messages",
			"/var/log/kern.log",
			"/var/log/auth.log",
			"/var/log/wtmp",
			"/var/log/btmp",
			"/var/log/lastlog",
		},
		SlowQueryLogs: []string{
			"/var/log/mysql/mysql-slow.log",
			"/var/log/mysql/slow.log",
			"/var/lib/mysql/slow.log",
		},
		TempDirs: []string{"/tmp", "/var/tmp"},
		CoreGlobs: []string{
			"/core",
			"/core.*",
			"/var/crash/*",
			"/var/lib/systemd/coredump/*",
		},
		MailDirs:  []string{"/var/mail", "/var/spool/mail"},
		LostFound: "/lost+found",
		AuditRoot: "/",
	}
}

// Action is one named step of the pipeline. All of them are non-critical:
// a failure is logged and the run continues. Only the precondition checks
// abort a run.
type Action struct {
	Name     string
	Critical bool
	Run      func(*Env) error
}

// Actions returns the pipeline in its fixed execution order. The ordering
// is deliberate: cache purges come before destructive temp deletion, and
// everything destructive comes before the informational audit tail.
func Actions() []Action {
	return []Action{
		{Name: "package cache clean", Run: actionPackageCache},
		{Name: "orphaned package removal", Run: actionOrphans},
		{Name: "journal vacuum", Run: actionJournalVacuum},
		{Name: "rotated log removal", Run: actionRotatedLogs},
		{Name: "slow query log truncation", Run: actionSlowQueryLogs},
		{Name: "temp directory cleanup", Run: actionTempDirs},
		{Name: "core dump removal", Run: actionCoreDumps},
		{Name: "stale mail pruning", Run: actionStaleMail},
		{Name: "lost+found cleanup", Run: actionLostFound},
		{Name: "large file audit", Run: actionLargeFileAudit},
		{Name: "old kernel removal", Run: actionOldKernels},
		{Name: "container engine prune", Run: actionContainerPrune},
	}
}
