package clean

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reclaimtool/reclaim/internal/distro"
)

func TestIsRotatedLog(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"syslog.1", true},
		{"messages.2.gz", true},
		{"daemon.log.xz", true},
		{"kern.log.bz2", true},
		{"run.log.old", true},
		{"syslog", false},
		{"archive.tar", false},
		{"dot.", false},
		{"mysql-slow.log", false},
	}
	for _, c := range cases {
		if got := isRotatedLog(c.name); got != c.want {
			t.Errorf("isRotatedLog(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestActionRotatedLogs(t *testing.T) {
	logDir := t.TempDir()
	mustWrite(t, filepath.Join(logDir, "syslog.1"), "old")
	mustWrite(t, filepath.Join(logDir, "messages.2.gz"), "older")
	mustWrite(t, filepath.Join(logDir, "daemon.log"), "active")

	active := filepath.Join(logDir, "syslog")
	mustWrite(t, active, "lines and lines")

	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{
		LogDir:       logDir,
		TruncateLogs: []string{active, filepath.Join(logDir, "not-there")},
	}

	if err := actionRotatedLogs(env); err != nil {
		t.Fatalf("actionRotatedLogs: %v", err)
	}

	for _, gone := range []string{"syslog.1", "messages.2.gz"} {
		if _, err := os.Stat(filepath.Join(logDir, gone)); !os.IsNotExist(err) {
			t.Errorf("%s survived removal", gone)
		}
	}
	if data, _ := os.ReadFile(filepath.Join(logDir, "daemon.log")); string(data) != "active" {
		t.Errorf("active log touched: %q", data)
	}
	if info, err := os.Stat(active); err != nil || info.Size() != 0 {
		t.Errorf("allow-list log not truncated: %v, %v", info, err)
	}
	if !strings.Contains(buf.String(), "removed 2 rotated log(s)") {
		t.Errorf("missing summary line: %q", buf.String())
	}
}

func TestActionSlowQueryLogs(t *testing.T) {
	dir := t.TempDir()
	slow := filepath.Join(dir, "mysql-slow.log")
	mustWrite(t, slow, "SELECT sleep(10)")

	env, _ := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{SlowQueryLogs: []string{slow, filepath.Join(dir, "absent.log")}}

	if err := actionSlowQueryLogs(env); err != nil {
		t.Fatalf("actionSlowQueryLogs: %v", err)
	}
	if info, err := os.Stat(slow); err != nil || info.Size() != 0 {
		t.Errorf("slow log not truncated: %v, %v", info, err)
	}
}

func TestActionSlowQueryLogsNoneFound(t *testing.T) {
	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{SlowQueryLogs: []string{filepath.Join(t.TempDir(), "nope.log")}}

	if err := actionSlowQueryLogs(env); err != nil {
		t.Fatalf("actionSlowQueryLogs: %v", err)
	}
	if !strings.Contains(buf.String(), "no slow query logs found") {
		t.Errorf("missing skip line: %q", buf.String())
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
