package domain

import "go.trai.ch/zerr"

var (
	// ErrBadMarker is returned when a task or group marker file contains
	// content that is not a well-formed YAML document.
	ErrBadMarker = zerr.New("malformed marker file")

	// ErrDuplicateTask is returned when two task directories share the same
	// name. Task names are unique across the whole course.
	ErrDuplicateTask = zerr.New("duplicate task name")

	// ErrTaskNotFound is returned when the schedule declares a task that has
	// no matching directory in the repository.
	ErrTaskNotFound = zerr.New("scheduled task not found in repository")

	// ErrNotARepository is returned when change detection is invoked on a
	// root that is not an initialized git working tree.
	ErrNotARepository = zerr.New("repository root is not a git working tree")

	// ErrUnknownStrategy is returned for an unrecognized change detection
	// strategy name.
	ErrUnknownStrategy = zerr.New("unknown change detection strategy")

	// ErrBadSchedule is returned when the schedule file cannot be parsed.
	ErrBadSchedule = zerr.New("malformed schedule file")
)
