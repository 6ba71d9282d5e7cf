// Package domain contains the core domain models for the course tree: tasks,
// groups, the discovered tree and the grading schedule.
package domain

import (
	"strings"
	"time"
)

// Task is a single gradable unit, backed by a directory carrying a task
// marker file. Tasks are created once during the repository scan and are
// immutable afterwards.
type Task struct {
	Name         string
	RelativePath string
	Score        int

	// Enabled mirrors the enabled flag of the schedule group this task
	// belongs to. A task has no independent enabled state.
	Enabled bool

	// Group points back to the owning group. It is nil for a root-level
	// task, which belongs to a schedule entry without a group directory.
	Group *Group
}

// RootLevel reports whether the task sits directly under the repository root
// rather than inside a group directory.
func (t *Task) RootLevel() bool {
	return !strings.Contains(t.RelativePath, "/")
}

// Group is an organizational unit backed by a directory carrying a group
// marker file. Start and Enabled are sourced from the schedule, never from
// the marker file.
type Group struct {
	Name         string
	RelativePath string
	Tasks        []*Task
	Start        time.Time
	Enabled      bool
}
