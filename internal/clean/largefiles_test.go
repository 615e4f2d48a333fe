package clean

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeSized(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLargestFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeSized(t, filepath.Join(root, "small"), 10)
	writeSized(t, filepath.Join(root, "medium"), 200)
	writeSized(t, filepath.Join(root, "sub", "big"), 500)
	writeSized(t, filepath.Join(root, "sub", "bigger"), 800)

	files, err := LargestFiles(root, 100, 10)
	if err != nil {
		t.Fatalf("LargestFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	if files[0].Size != 800 || files[1].Size != 500 || files[2].Size != 200 {
		t.Errorf("not sorted largest first: %+v", files)
	}
}

func TestLargestFilesHonorsTop(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		writeSized(t, filepath.Join(root, name), 150)
	}

	files, err := LargestFiles(root, 100, 2)
	if err != nil {
		t.Fatalf("LargestFiles: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2", len(files))
	}
}

func TestLargestFilesSkipsIrregular(t *testing.T) {
	root := t.TempDir()
	writeSized(t, filepath.Join(root, "real"), 300)
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}

	files, err := LargestFiles(root, 100, 10)
	if err != nil {
		t.Fatalf("LargestFiles: %v", err)
	}
	if len(files) != 1 || files[0].Path != filepath.Join(root, "real") {
		t.Errorf("symlink counted: %+v", files)
	}
}

func TestLargestFilesMissingRoot(t *testing.T) {
	if _, err := LargestFiles(filepath.Join(t.TempDir(), "gone"), 1, 1); err == nil {
		t.Error("expected error for missing root")
	}
}
