// Package levels loads enemy encounters for Reactor.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	EnemyName string
	Hull      float64
	Armor     float64
	Power     float64
	Script    []string
	Reveal    core.RevealSchedule
	FilePath  string
}

// Core returns the part of the level the simulation needs.
func (l Level) Core() core.Level {
	return core.Level{Script: append([]string(nil), l.Script...), Reveal: l.Reveal}
}

// Validate checks every scripted action against the action table.
func (l Level) Validate(known func(id string) bool) error {
	for i, id := range l.Script {
		if !known(id) {
			return fmt.Errorf("levels: %s: script[%d]: unknown action %q", l.ID, i, id)
		}
	}
	return nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader reading root inside fsys.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// Campaign returns a loader for the built-in campaign.
func Campaign() *Loader {
	return NewLoader(campaignFS, "campaign")
}

// Dir returns a loader for a directory on disk.
func Dir(dir string) *Loader {
	return NewLoader(os.DirFS(dir), ".")
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	for i := 1; i < len(levels); i++ {
		if levels[i].ID == levels[i-1].ID {
			return nil, fmt.Errorf("levels: duplicate id %s", levels[i].ID)
		}
	}

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

func isSupportedExtension(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
