package domain

import "go.trai.ch/zerr"

// Tree is the result of a single repository scan: every discovered group and
// every discovered task, in discovery order. It enforces global task name
// uniqueness once, so the detectors downstream may assume a name identifies
// exactly one task.
type Tree struct {
	groups []*Group
	tasks  []*Task

	groupsByName map[string]*Group
	tasksByName  map[string]*Task
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{
		groupsByName: make(map[string]*Group),
		tasksByName:  make(map[string]*Task),
	}
}

// AddGroup adds a group and registers every task it owns.
// It returns ErrDuplicateTask if any task name is already taken.
func (tr *Tree) AddGroup(g *Group) error {
	for _, t := range g.Tasks {
		if err := tr.registerTask(t); err != nil {
			return err
		}
	}
	tr.groups = append(tr.groups, g)
	tr.groupsByName[g.Name] = g
	return nil
}

// AddTask adds a task that is not owned by any discovered group.
// It returns ErrDuplicateTask if the name is already taken.
func (tr *Tree) AddTask(t *Task) error {
	return tr.registerTask(t)
}

func (tr *Tree) registerTask(t *Task) error {
	if _, exists := tr.tasksByName[t.Name]; exists {
		return zerr.With(ErrDuplicateTask, "task_name", t.Name)
	}
	tr.tasks = append(tr.tasks, t)
	tr.tasksByName[t.Name] = t
	return nil
}

// Groups returns the discovered groups in discovery order.
func (tr *Tree) Groups() []*Group {
	return tr.groups
}

// Tasks returns every discovered task in discovery order, root-level tasks
// included.
func (tr *Tree) Tasks() []*Task {
	return tr.tasks
}

// GroupByName returns the discovered group with the given name.
func (tr *Tree) GroupByName(name string) (*Group, bool) {
	g, ok := tr.groupsByName[name]
	return g, ok
}

// TaskByName returns the discovered task with the given name.
func (tr *Tree) TaskByName(name string) (*Task, bool) {
	t, ok := tr.tasksByName[name]
	return t, ok
}

// RootTasks returns the tasks located directly under the repository root.
func (tr *Tree) RootTasks() []*Task {
	var res []*Task
	for _, t := range tr.tasks {
		if t.RootLevel() {
			res = append(res, t)
		}
	}
	return res
}
