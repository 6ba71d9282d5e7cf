// Package ports defines the interfaces between the core and its adapters.
package ports

// Logger defines the interface for logging. Reconciliation warnings are
// reported through Warn; they never abort processing.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
