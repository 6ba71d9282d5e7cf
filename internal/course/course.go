// Package course implements the course aggregate. It owns the discovered
// task tree and the grading schedule, and answers the three questions the
// grading pipeline asks: what is there, does it match the schedule, and what
// did the last change touch.
package course

import (
	"fmt"

	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/checker/internal/engine/detect"
	"go.trai.ch/zerr"
)

// Course is built once from a repository root and a schedule. The tree is
// scanned eagerly at construction and never re-scanned; build a new Course
// to pick up filesystem changes.
type Course struct {
	root     string
	schedule *domain.Schedule
	tree     *domain.Tree
	vcs      ports.VCSFactory
	logger   ports.Logger
}

// New scans root and correlates the schedule with the discovered tree.
// Malformed marker files and duplicate task names fail here, not later.
func New(
	root string,
	schedule *domain.Schedule,
	scanner ports.TreeScanner,
	vcsFactory ports.VCSFactory,
	logger ports.Logger,
) (*Course, error) {
	tree, err := scanner.Scan(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan repository tree")
	}

	c := &Course{
		root:     root,
		schedule: schedule,
		tree:     tree,
		vcs:      vcsFactory,
		logger:   logger,
	}
	c.correlate()
	return c, nil
}

// Root returns the repository root the course was built from.
func (c *Course) Root() string {
	return c.root
}

// Schedule returns the schedule the course was built with.
func (c *Course) Schedule() *domain.Schedule {
	return c.schedule
}

// correlate applies the schedule to the discovered tree. The schedule is the
// single source of truth for enabled state, start times and scores; a group
// the schedule never mentions stays disabled.
func (c *Course) correlate() {
	for _, entry := range c.schedule.Groups {
		if group, ok := c.tree.GroupByName(entry.Name); ok {
			group.Start = entry.Start
			group.Enabled = entry.Enabled

			scores := make(map[string]int, len(entry.Tasks))
			for _, st := range entry.Tasks {
				scores[st.Name] = st.Score
			}
			for _, task := range group.Tasks {
				task.Enabled = entry.Enabled
				if score, ok := scores[task.Name]; ok {
					task.Score = score
				}
			}
			continue
		}

		// No directory for this entry: the tasks it declares live at the
		// repository root.
		for _, st := range entry.Tasks {
			if task, ok := c.tree.TaskByName(st.Name); ok && task.RootLevel() {
				task.Enabled = entry.Enabled
				task.Score = st.Score
			}
		}
	}
}

// GetGroups returns the discovered groups in discovery order, optionally
// filtered by enabled state. A nil filter returns everything.
func (c *Course) GetGroups(enabled *bool) []*domain.Group {
	groups := c.tree.Groups()
	if enabled == nil {
		return groups
	}
	var res []*domain.Group
	for _, g := range groups {
		if g.Enabled == *enabled {
			res = append(res, g)
		}
	}
	return res
}

// GetTasks returns the discovered tasks in discovery order, optionally
// filtered by enabled state. A nil filter returns everything.
func (c *Course) GetTasks(enabled *bool) []*domain.Task {
	tasks := c.tree.Tasks()
	if enabled == nil {
		return tasks
	}
	var res []*domain.Task
	for _, t := range tasks {
		if t.Enabled == *enabled {
			res = append(res, t)
		}
	}
	return res
}

// Validate cross-checks every schedule entry against the discovered tree.
// A declared task missing from its group, or from the repository root when
// the group has no directory, is fatal: grading would silently skip it. An
// entry with no directory and no tasks carries nothing checkable, so it only
// warns.
func (c *Course) Validate() error {
	for _, entry := range c.schedule.Groups {
		group, found := c.tree.GroupByName(entry.Name)

		if !found && len(entry.Tasks) == 0 {
			c.logger.Warn(fmt.Sprintf("schedule group %q has no matching folder and no tasks to check", entry.Name))
			continue
		}

		for _, st := range entry.Tasks {
			if found {
				if !groupHasTask(group, st.Name) {
					return zerr.With(zerr.With(domain.ErrTaskNotFound, "task", st.Name), "group", entry.Name)
				}
				continue
			}
			task, ok := c.tree.TaskByName(st.Name)
			if !ok || !task.RootLevel() {
				return zerr.With(zerr.With(domain.ErrTaskNotFound, "task", st.Name), "group", entry.Name)
			}
		}
	}
	return nil
}

func groupHasTask(g *domain.Group, name string) bool {
	for _, t := range g.Tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// DetectChanges opens the repository and returns the enabled tasks impacted
// by the current branch, last commit message or last commit diff, depending
// on the strategy. A root that is not a git working tree fails immediately.
func (c *Course) DetectChanges(strategy domain.DetectionStrategy) ([]*domain.Task, error) {
	v, err := c.vcs.Open(c.root)
	if err != nil {
		return nil, err
	}
	enabled := true
	return detect.Changes(strategy, c.GetTasks(&enabled), v)
}
