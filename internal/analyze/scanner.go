package analyze

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/reclaimtool/reclaim/internal/fsutil"
)

// DirEntry represents a file or directory in the scan tree.
type DirEntry struct {
	Path     string
	Name     string
	Size     int64
	IsDir    bool
	Children []*DirEntry
	Parent   *DirEntry
	ModTime  time.Time
}

// IsOld returns true if the entry hasn't been modified in 6+ months.
func (e *DirEntry) IsOld() bool {
	return time.Since(e.ModTime) > 180*24*time.Hour
}

// Percentage returns the entry's size as a percentage of its parent's size.
func (e *DirEntry) Percentage(parentSize int64) float64 {
	if parentSize == 0 {
		return 0
	}
	return float64(e.Size) / float64(parentSize) * 100
}

// Scanner performs parallel recursive directory scanning confined to a
// single filesystem: directories on other devices (mount points) are not
// descended, and symlinks are never followed.
type Scanner struct {
	sem          chan struct{}
	exclude      map[string]bool
	rootDev      uint64
	mu           sync.Mutex
	warnings     []string
	scannedCount atomic.Int64
}

// NewScanner creates a scanner with bounded concurrency.
// exclude is a list of directory names (case-insensitive) to skip.
func NewScanner(maxConcurrency int, exclude []string) *Scanner {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	excMap := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Scanner{
		sem:     make(chan struct{}, maxConcurrency),
		exclude: excMap,
	}
}

// Warnings returns any warnings accumulated during scanning.
func (s *Scanner) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

// ScannedCount returns the number of entries scanned so far.
func (s *Scanner) ScannedCount() int64 {
	return s.scannedCount.Load()
}

func (s *Scanner) addWarning(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.warnings) < 500 {
		s.warnings = append(s.warnings, msg)
	}
}

// Scan performs a parallel recursive scan of the given root path.
func (s *Scanner) Scan(rootPath string) (*DirEntry, error) {
	rootPath = filepath.Clean(rootPath)

	info, err := os.Lstat(rootPath)
	if err != nil {
		return nil, err
	}

	root := &DirEntry{
		Path:    rootPath,
		Name:    info.Name(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}

	if !info.IsDir() {
		root.Size = info.Size()
		return root, nil
	}

	if dev, ok := fsutil.DeviceID(rootPath); ok {
		s.rootDev = dev
	}

	s.scanDir(root)
	s.calculateSizes(root)

	return root, nil
}

// scanDir recursively scans a directory, using the semaphore only during I/O
// to prevent deadlocks from nested goroutine semaphore acquisition.
func (s *Scanner) scanDir(entry *DirEntry) {
	// Hold semaphore only during the ReadDir I/O.
	s.sem <- struct{}{}
	entries, err := os.ReadDir(entry.Path)
	<-s.sem

	if err != nil {
		s.addWarning("cannot read " + entry.Path + ": " + err.Error())
		return
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, e := range entries {
		childPath := filepath.Join(entry.Path, e.Name())
		s.scannedCount.Add(1)

		// Skip excluded directories.
		if e.IsDir() && s.exclude[strings.ToLower(e.Name())] {
			continue
		}

		// NEVER follow symlinks — infinite recursion risk.
		if e.Type()&os.ModeSymlink != 0 {
			continue
		}

		// Stay on one filesystem: a directory on another device is a
		// mount point (proc, sys, external disks) and is not descended.
		if e.IsDir() && s.rootDev != 0 {
			if dev, ok := fsutil.DeviceID(childPath); !ok || dev != s.rootDev {
				s.addWarning("skipping mount point: " + childPath)
				continue
			}
		}

		info, err := e.Info()
		if err != nil {
			// Permission denied or other error — skip, don't fail.
			s.addWarning("cannot stat " + childPath + ": " + err.Error())
			continue
		}

		child := &DirEntry{
			Path:    childPath,
			Name:    e.Name(),
			IsDir:   e.IsDir(),
			Parent:  entry,
			ModTime: info.ModTime(),
		}

		if !e.IsDir() {
			child.Size = info.Size()
		} else {
			wg.Add(1)
			go func(dir *DirEntry) {
				defer wg.Done()
				s.scanDir(dir)
			}(child)
		}

		mu.Lock()
		entry.Children = append(entry.Children, child)
		mu.Unlock()
	}

	wg.Wait()
}

// calculateSizes walks the tree bottom-up, summing sizes from children,
// then sorts each level by size descending.
func (s *Scanner) calculateSizes(entry *DirEntry) {
	if !entry.IsDir {
		return
	}

	var total int64
	for _, child := range entry.Children {
		s.calculateSizes(child)
		total += child.Size
	}
	entry.Size = total

	sort.Slice(entry.Children, func(i, j int) bool {
		return entry.Children[i].Size > entry.Children[j].Size
	})
}
