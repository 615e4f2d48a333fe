package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bytes formats a byte count in a readable IEC form (e.g. "1.4 GiB").
func Bytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// MB formats a megabyte count with a thousands-free integer form.
func MB(mb uint64) string {
	if mb >= 1024 {
		return fmt.Sprintf("%.1f GB", float64(mb)/1024.0)
	}
	return fmt.Sprintf("%d MB", mb)
}

// Duration formats a duration readably, rounding to seconds.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

// ParseSize parses a human size string like "100MB", "1.5G" or "2048"
// (plain bytes) into a byte count.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "TB"), strings.HasSuffix(s, "T"):
		mult = 1024 * 1024 * 1024 * 1024
	case strings.HasSuffix(s, "GB"), strings.HasSuffix(s, "G"):
		mult = 1024 * 1024 * 1024
	case strings.HasSuffix(s, "MB"), strings.HasSuffix(s, "M"):
		mult = 1024 * 1024
	case strings.HasSuffix(s, "KB"), strings.HasSuffix(s, "K"):
		mult = 1024
	case strings.HasSuffix(s, "B"):
		// plain bytes
	}
	num := strings.TrimRight(s, "BKMGT")

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return int64(v * float64(mult)), nil
}
