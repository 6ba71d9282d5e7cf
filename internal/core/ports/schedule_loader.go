package ports

import "go.trai.ch/checker/internal/core/domain"

// ScheduleLoader loads the grading schedule from an external document. The
// core itself only ever consumes the already typed domain.Schedule.
//
//go:generate mockgen -source=schedule_loader.go -destination=mocks/mock_schedule_loader.go -package=mocks
type ScheduleLoader interface {
	Load(path string) (*domain.Schedule, error)
}
