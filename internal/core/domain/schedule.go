package domain

import "time"

// Schedule is the externally supplied grading schedule. The core consumes it
// already parsed; it is the single source of truth for enabled state, start
// times and scores, while the filesystem is the source of truth for task
// existence and location.
type Schedule struct {
	Groups []ScheduleGroup
}

// ScheduleGroup is one entry of the schedule. Its name may refer to a group
// directory, or to no directory at all when every declared task lives at the
// repository root.
type ScheduleGroup struct {
	Name    string
	Start   time.Time
	Enabled bool
	Tasks   []ScheduleTask
}

// ScheduleTask declares a task name and the score it is graded with.
type ScheduleTask struct {
	Name  string
	Score int
}
