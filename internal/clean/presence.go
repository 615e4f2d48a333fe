package clean

import "os"

// Presence is the tri-state result of probing a path: it exists, it does
// not, or the probe itself failed. Every action consumes this uniformly so
// "absence is a skip, not an error" stays consistent.
type Presence int

const (
	Absent Presence = iota
	Present
	Error
)

// probePath stats a path and classifies the result.
func probePath(path string) (Presence, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Present, nil
	case os.IsNotExist(err):
		return Absent, nil
	default:
		return Error, err
	}
}

// dirPresent is the common "only if the directory exists" guard.
func dirPresent(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
