package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader loads puzzles from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new puzzle loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all puzzle files.
// Invalid files are skipped. Puzzles are sorted by ID.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var puzzles []Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		p, err := LoadFile(path)
		if err != nil {
			return nil
		}
		puzzles = append(puzzles, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

// LoadByID loads the puzzle with the given ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}
	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("puzzle not found: %s", id)
}

// LoadFile loads a single puzzle file.
func LoadFile(path string) (Puzzle, error) {
	if !isSupportedExtension(filepath.Ext(path)) {
		return Puzzle{}, fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	p, err := ParseYAML(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
