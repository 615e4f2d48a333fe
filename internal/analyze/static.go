package analyze

import (
	"fmt"
	"strings"

	"github.com/reclaimtool/reclaim/internal/format"
)

// PrintStaticTree prints a plain-text tree view of the scan results. Used
// when stdout is not a terminal and the interactive browser cannot render.
// Respects depth and minSize filters.
func PrintStaticTree(root *DirEntry, maxDepth int, minSize int64) {
	if root == nil {
		fmt.Println("  No data to display.")
		return
	}

	fmt.Printf("  Disk usage: %s\n", root.Path)
	fmt.Printf("  Total size: %s\n", format.Bytes(root.Size))
	fmt.Println("  " + strings.Repeat("-", 58))
	fmt.Println()

	printEntry(root, "", true, 0, maxDepth, minSize)

	fmt.Println()
	fmt.Println("  " + strings.Repeat("-", 58))
	fmt.Printf("  Total: %s\n", format.Bytes(root.Size))
}

// printEntry recursively prints a directory entry in tree format. Uses
// ASCII connectors (+-- \-- |) so the output survives dumb terminals and
// log files.
func printEntry(entry *DirEntry, prefix string, isLast bool, depth, maxDepth int, minSize int64) {
	if entry == nil {
		return
	}

	// Apply depth limit (0 = unlimited).
	if maxDepth > 0 && depth > maxDepth {
		return
	}

	if minSize > 0 && entry.Size < minSize {
		return
	}

	connector := "+-- "
	childPrefix := "|   "
	if isLast {
		connector = "\\-- "
		childPrefix = "    "
	}

	// Root has no connector.
	if depth == 0 {
		connector = ""
		childPrefix = ""
	}

	dirMarker := ""
	if entry.IsDir {
		dirMarker = "/"
	}

	fmt.Printf("  %s%s%s%s  %s\n", prefix, connector, entry.Name, dirMarker, format.Bytes(entry.Size))

	if !entry.IsDir || len(entry.Children) == 0 {
		return
	}

	// Children are already sorted largest-first by the scanner. Limit to
	// the top 20 per level to keep output manageable.
	children := entry.Children
	maxShow := 20
	if len(children) > maxShow {
		shown := children[:maxShow]
		for i, child := range shown {
			printEntry(child, prefix+childPrefix, i == len(shown)-1, depth+1, maxDepth, minSize)
		}
		fmt.Printf("  %s%s... and %d more entries\n", prefix+childPrefix, "\\-- ", len(children)-maxShow)
		return
	}
	for i, child := range children {
		printEntry(child, prefix+childPrefix, i == len(children)-1, depth+1, maxDepth, minSize)
	}
}
