package domain

import "go.trai.ch/zerr"

// DetectionStrategy selects how impacted tasks are derived from the state of
// the git repository.
type DetectionStrategy string

const (
	// DetectByBranchName matches the current branch name against task names.
	DetectByBranchName DetectionStrategy = "branch-name"
	// DetectByCommitMessage matches tokens of the last commit message against
	// task names.
	DetectByCommitMessage DetectionStrategy = "commit-message"
	// DetectByLastCommitChanges maps the files touched by the last commit to
	// the task directories containing them.
	DetectByLastCommitChanges DetectionStrategy = "last-commit-changes"
)

// ParseDetectionStrategy converts a user supplied strategy name into a
// DetectionStrategy.
func ParseDetectionStrategy(s string) (DetectionStrategy, error) {
	switch DetectionStrategy(s) {
	case DetectByBranchName, DetectByCommitMessage, DetectByLastCommitChanges:
		return DetectionStrategy(s), nil
	default:
		return "", zerr.With(ErrUnknownStrategy, "strategy", s)
	}
}
