// Package app implements the application layer for checker.
package app

import (
	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/checker/internal/course"
	"go.trai.ch/zerr"
)

// App wires the schedule loader, the tree scanner and the git adapter into
// the use cases the CLI exposes.
type App struct {
	scheduleLoader ports.ScheduleLoader
	scanner        ports.TreeScanner
	vcs            ports.VCSFactory
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ScheduleLoader,
	scanner ports.TreeScanner,
	vcsFactory ports.VCSFactory,
	logger ports.Logger,
) *App {
	return &App{
		scheduleLoader: loader,
		scanner:        scanner,
		vcs:            vcsFactory,
		logger:         logger,
	}
}

// Open loads the schedule and builds the course aggregate for root. The
// repository scan runs here; malformed markers and duplicate task names
// surface immediately.
func (a *App) Open(root, schedulePath string) (*course.Course, error) {
	schedule, err := a.scheduleLoader.Load(schedulePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load schedule")
	}
	c, err := course.New(root, schedule, a.scanner, a.vcs, a.logger)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build course")
	}
	return c, nil
}

// Validate scans the repository and reconciles it against the schedule.
func (a *App) Validate(root, schedulePath string) error {
	c, err := a.Open(root, schedulePath)
	if err != nil {
		return err
	}
	return c.Validate()
}

// DetectChanges returns the enabled tasks impacted by the latest change in
// the repository at root, according to the chosen strategy.
func (a *App) DetectChanges(root, schedulePath string, strategy domain.DetectionStrategy) ([]*domain.Task, error) {
	c, err := a.Open(root, schedulePath)
	if err != nil {
		return nil, err
	}
	return c.DetectChanges(strategy)
}

// Components contains the initialized application components. It provides
// controlled access to what the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
