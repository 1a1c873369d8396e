package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LevelEntry represents a discoverable level in the data directory
type LevelEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the level JSON file
}

// ScanDataDirectory scans dataPath/levels for level files.
// Entries are returned sorted by name so level order is stable.
func ScanDataDirectory(dataPath string) ([]LevelEntry, error) {
	levelsPath := filepath.Join(dataPath, "levels")
	entries, err := os.ReadDir(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}

		levels = append(levels, LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(levelsPath, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})

	return levels, nil
}

// Find returns the entry with the given name
func Find(levels []LevelEntry, name string) (LevelEntry, bool) {
	for _, l := range levels {
		if l.Name == name {
			return l, true
		}
	}
	return LevelEntry{}, false
}
