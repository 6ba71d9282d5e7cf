package ports

import "go.trai.ch/checker/internal/core/domain"

// TreeScanner discovers the task and group tree of a repository root.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type TreeScanner interface {
	// Scan walks the repository root once and returns every group and task
	// found. It fails on malformed marker files and duplicate task names.
	Scan(root string) (*domain.Tree, error)
}
