// Package scan implements the repository tree scanner. It discovers group
// and task directories by their marker files in a single deterministic pass.
package scan

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// TaskMarkerName is the sentinel file marking a directory as a task.
	TaskMarkerName = ".task.yml"
	// GroupMarkerName is the sentinel file marking a directory as a group.
	GroupMarkerName = ".group.yml"
)

var _ ports.TreeScanner = (*Scanner)(nil)

// Scanner implements ports.TreeScanner against the local filesystem.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the immediate children of root. A subdirectory carrying a group
// marker becomes a group and is scanned one level deeper for tasks; a
// subdirectory carrying a task marker becomes a root-level task. Everything
// else is plain content. os.ReadDir sorts entries by name, so discovery
// order is reproducible.
func (s *Scanner) Scan(root string) (*domain.Tree, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read repository root"), "root", root)
	}

	tree := domain.NewTree()
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == ".git" {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		switch {
		case hasMarker(dir, GroupMarkerName):
			group, err := s.scanGroup(root, entry.Name())
			if err != nil {
				return nil, err
			}
			if err := tree.AddGroup(group); err != nil {
				return nil, err
			}
		case hasMarker(dir, TaskMarkerName):
			if err := parseMarker(filepath.Join(dir, TaskMarkerName)); err != nil {
				return nil, err
			}
			task := &domain.Task{Name: entry.Name(), RelativePath: entry.Name()}
			if err := tree.AddTask(task); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

// scanGroup collects the tasks directly beneath a group directory.
func (s *Scanner) scanGroup(root, name string) (*domain.Group, error) {
	dir := filepath.Join(root, name)
	if err := parseMarker(filepath.Join(dir, GroupMarkerName)); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read group directory"), "group", name)
	}

	group := &domain.Group{Name: name, RelativePath: name}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		marker := filepath.Join(dir, entry.Name(), TaskMarkerName)
		if !fileExists(marker) {
			continue
		}
		if err := parseMarker(marker); err != nil {
			return nil, err
		}
		group.Tasks = append(group.Tasks, &domain.Task{
			Name: entry.Name(),
			// Relative paths use forward slashes so they line up with the
			// paths git reports.
			RelativePath: path.Join(name, entry.Name()),
			Group:        group,
		})
	}
	return group, nil
}

// markerDoc is the tolerated marker file content. Markers carry no authority
// beyond their presence; the version field is accepted but otherwise unused.
type markerDoc struct {
	Version int `yaml:"version"`
}

// parseMarker checks that a marker file is empty, whitespace-only or a
// well-formed YAML mapping. Anything else is a fatal configuration error.
func parseMarker(p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read marker file"), "path", p)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	var doc markerDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.With(domain.ErrBadMarker, "path", p), "parse_error", err.Error())
	}
	return nil
}

func hasMarker(dir, marker string) bool {
	return fileExists(filepath.Join(dir, marker))
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
