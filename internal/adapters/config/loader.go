// Package config provides the loader for the grading schedule file.
package config

import (
	"os"
	"time"

	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// startLayout is the timestamp format used by schedule entries.
const startLayout = "2006-01-02 15:04:05"

var _ ports.ScheduleLoader = (*FileScheduleLoader)(nil)

// FileScheduleLoader implements ports.ScheduleLoader using a YAML file.
type FileScheduleLoader struct{}

// NewLoader creates a new FileScheduleLoader.
func NewLoader() *FileScheduleLoader {
	return &FileScheduleLoader{}
}

// Load reads the schedule from the given path.
func (l *FileScheduleLoader) Load(path string) (*domain.Schedule, error) {
	return Load(path)
}

// scheduleFile represents the structure of the schedule YAML document.
type scheduleFile struct {
	Version  int                `yaml:"version"`
	Settings settingsDTO        `yaml:"settings"`
	Schedule []scheduleGroupDTO `yaml:"schedule"`
}

type settingsDTO struct {
	Timezone string `yaml:"timezone"`
}

// scheduleGroupDTO represents one schedule entry. Enabled defaults to true
// when omitted.
type scheduleGroupDTO struct {
	Group   string            `yaml:"group"`
	Start   string            `yaml:"start"`
	Enabled *bool             `yaml:"enabled"`
	Tasks   []scheduleTaskDTO `yaml:"tasks"`
}

type scheduleTaskDTO struct {
	Task  string `yaml:"task"`
	Score int    `yaml:"score"`
}

// Load reads a schedule file from the given path and returns a typed
// domain.Schedule. Start times are interpreted in the configured timezone.
func Load(path string) (*domain.Schedule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read schedule file"), "path", path)
	}

	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrBadSchedule, "path", path), "parse_error", err.Error())
	}

	loc := time.Local
	if file.Settings.Timezone != "" {
		loc, err = time.LoadLocation(file.Settings.Timezone)
		if err != nil {
			return nil, zerr.With(domain.ErrBadSchedule, "timezone", file.Settings.Timezone)
		}
	}

	schedule := &domain.Schedule{Groups: make([]domain.ScheduleGroup, 0, len(file.Schedule))}
	for _, dto := range file.Schedule {
		if dto.Group == "" {
			return nil, zerr.With(domain.ErrBadSchedule, "reason", "schedule entry without group name")
		}

		var start time.Time
		if dto.Start != "" {
			start, err = time.ParseInLocation(startLayout, dto.Start, loc)
			if err != nil {
				return nil, zerr.With(zerr.With(domain.ErrBadSchedule, "group", dto.Group), "start", dto.Start)
			}
		}

		enabled := true
		if dto.Enabled != nil {
			enabled = *dto.Enabled
		}

		tasks := make([]domain.ScheduleTask, 0, len(dto.Tasks))
		for _, taskDTO := range dto.Tasks {
			if taskDTO.Task == "" {
				return nil, zerr.With(zerr.With(domain.ErrBadSchedule, "group", dto.Group), "reason", "task entry without name")
			}
			tasks = append(tasks, domain.ScheduleTask{Name: taskDTO.Task, Score: taskDTO.Score})
		}

		schedule.Groups = append(schedule.Groups, domain.ScheduleGroup{
			Name:    dto.Group,
			Start:   start,
			Enabled: enabled,
			Tasks:   tasks,
		})
	}

	return schedule, nil
}
