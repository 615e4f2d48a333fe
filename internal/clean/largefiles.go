package clean

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/reclaimtool/reclaim/internal/format"
	"github.com/reclaimtool/reclaim/internal/fsutil"
)

// LargeFile is one entry of the large-file audit.
type LargeFile struct {
	Path string
	Size int64
}

// actionLargeFileAudit locates the largest files on the root filesystem and
// logs the top of the list. Informational only — nothing is removed.
func actionLargeFileAudit(e *Env) error {
	return e.Gate("audit files larger than "+format.Bytes(e.Cfg.LargeFileMinBytes), false, func() error {
		files, err := LargestFiles(e.Paths.AuditRoot, e.Cfg.LargeFileMinBytes, e.Cfg.LargeFileTop)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			e.Log.Logf("no files above the audit threshold")
			return nil
		}
		e.Log.Logf("%d largest file(s) on %s:", len(files), e.Paths.AuditRoot)
		for _, f := range files {
			e.Log.Logf("  %10s  %s", format.Bytes(f.Size), f.Path)
		}
		return nil
	})
}

// LargestFiles walks root without crossing onto other mounted filesystems
// and returns up to top files of at least min bytes, largest first.
func LargestFiles(root string, min int64, top int) ([]LargeFile, error) {
	rootDev, ok := fsutil.DeviceID(root)
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: root, Err: syscall.ENOENT}
	}

	var files []LargeFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied and friends: skip, never fail the audit.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() && path != root {
			if dev, ok := fsutil.DeviceID(path); !ok || dev != rootDev {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() < min {
			return nil
		}
		files = append(files, LargeFile{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Size > files[j].Size })
	if len(files) > top {
		files = files[:top]
	}
	return files, nil
}
