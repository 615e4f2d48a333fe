package fsutil

import (
	"path/filepath"
	"testing"
)

func TestDeviceID(t *testing.T) {
	dir := t.TempDir()

	dev, ok := DeviceID(dir)
	if !ok {
		t.Fatal("DeviceID failed for an existing directory")
	}

	// Same filesystem, same id.
	sub := filepath.Join(dir, "..")
	if dev2, ok := DeviceID(sub); !ok || dev2 != dev {
		t.Errorf("DeviceID(%s) = %d,%v, want %d,true", sub, dev2, ok, dev)
	}

	if _, ok := DeviceID(filepath.Join(dir, "gone")); ok {
		t.Error("DeviceID succeeded for a missing path")
	}
}
