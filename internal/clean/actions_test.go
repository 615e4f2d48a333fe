package clean

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reclaimtool/reclaim/internal/distro"
)

func TestActionJournalVacuum(t *testing.T) {
	runner := &fakeRunner{existing: map[string]bool{"journalctl": true}}
	useFakeRunner(t, runner)
	env, _ := testEnv(t, testConfig(), distro.Ubuntu)

	if err := actionJournalVacuum(env); err != nil {
		t.Fatalf("actionJournalVacuum: %v", err)
	}
	if !runner.called("journalctl --vacuum-size=500M") {
		t.Errorf("vacuum not invoked: %v", runner.calls)
	}
}

func TestActionJournalVacuumSkipsWithoutJournalctl(t *testing.T) {
	runner := &fakeRunner{existing: map[string]bool{}}
	useFakeRunner(t, runner)
	env, buf := testEnv(t, testConfig(), distro.Ubuntu)

	if err := actionJournalVacuum(env); err != nil {
		t.Fatalf("actionJournalVacuum: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("journalctl invoked: %v", runner.calls)
	}
	if !strings.Contains(buf.String(), "journalctl not found, skipping journal vacuum") {
		t.Errorf("missing skip line: %q", buf.String())
	}
}

func TestActionStaleMail(t *testing.T) {
	spool := t.TempDir()
	old := filepath.Join(spool, "alice")
	fresh := filepath.Join(spool, "bob")
	mustWrite(t, old, "ancient")
	mustWrite(t, fresh, "new")

	stale := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatal(err)
	}

	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{MailDirs: []string{spool, filepath.Join(spool, "absent")}}

	if err := actionStaleMail(env); err != nil {
		t.Fatalf("actionStaleMail: %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("stale mail survived")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh mail removed")
	}
	if !strings.Contains(buf.String(), "pruned 1 stale mail file(s) from "+spool) {
		t.Errorf("missing prune line: %q", buf.String())
	}
}

func TestActionStaleMailNoSpool(t *testing.T) {
	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{MailDirs: []string{filepath.Join(t.TempDir(), "absent")}}

	if err := actionStaleMail(env); err != nil {
		t.Fatalf("actionStaleMail: %v", err)
	}
	if !strings.Contains(buf.String(), "no mail spool found, skipping") {
		t.Errorf("missing skip line: %q", buf.String())
	}
}

func TestActionLostFound(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "#12345"), "fragment")
	mustWrite(t, filepath.Join(dir, "#67890"), "fragment")

	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{LostFound: dir}

	if err := actionLostFound(env); err != nil {
		t.Fatalf("actionLostFound: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("lost+found itself removed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fragments left behind: %d", len(entries))
	}
	if !strings.Contains(buf.String(), "removed 2 entries from "+dir) {
		t.Errorf("missing summary line: %q", buf.String())
	}
}

func TestActionCoreDumps(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "core.1234"), "dump")
	mustWrite(t, filepath.Join(dir, "core.5678"), "dump")
	mustWrite(t, filepath.Join(dir, "notes"), "keep")

	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{CoreGlobs: []string{filepath.Join(dir, "core.*")}}

	if err := actionCoreDumps(env); err != nil {
		t.Fatalf("actionCoreDumps: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes")); err != nil {
		t.Error("unrelated file removed")
	}
	if !strings.Contains(buf.String(), "removed 2 core dump file(s)") {
		t.Errorf("missing summary line: %q", buf.String())
	}
}

func TestActionCoreDumpsNoneFound(t *testing.T) {
	env, buf := testEnv(t, testConfig(), distro.Ubuntu)
	env.Paths = Paths{CoreGlobs: []string{filepath.Join(t.TempDir(), "core.*")}}

	if err := actionCoreDumps(env); err != nil {
		t.Fatalf("actionCoreDumps: %v", err)
	}
	if !strings.Contains(buf.String(), "no core dump files found") {
		t.Errorf("missing skip line: %q", buf.String())
	}
}

func TestActionContainerPrune(t *testing.T) {
	runner := &fakeRunner{existing: map[string]bool{"podman": true}}
	useFakeRunner(t, runner)
	env, _ := testEnv(t, testConfig(), distro.Fedora)

	if err := actionContainerPrune(env); err != nil {
		t.Fatalf("actionContainerPrune: %v", err)
	}
	if !runner.called("podman system prune -af --volumes") {
		t.Errorf("prune not invoked: %v", runner.calls)
	}
}

func TestActionContainerPrunePrefersDocker(t *testing.T) {
	runner := &fakeRunner{existing: map[string]bool{"docker": true, "podman": true}}
	useFakeRunner(t, runner)
	env, _ := testEnv(t, testConfig(), distro.Ubuntu)

	if err := actionContainerPrune(env); err != nil {
		t.Fatalf("actionContainerPrune: %v", err)
	}
	if !runner.called("docker system prune") {
		t.Errorf("docker not preferred: %v", runner.calls)
	}
	if runner.called("podman") {
		t.Errorf("both engines pruned: %v", runner.calls)
	}
}

func TestActionsOrder(t *testing.T) {
	want := []string{
		"package cache clean",
		"orphaned package removal",
		"journal vacuum",
		"rotated log removal",
		"slow query log truncation",
		"temp directory cleanup",
		"core dump removal",
		"stale mail pruning",
		"lost+found cleanup",
		"large file audit",
		"old kernel removal",
		"container engine prune",
	}
	actions := Actions()
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i, a := range actions {
		if a.Name != want[i] {
			t.Errorf("action %d = %q, want %q", i, a.Name, want[i])
		}
		if a.Critical {
			t.Errorf("action %q marked critical", a.Name)
		}
	}
}
