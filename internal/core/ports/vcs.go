package ports

// VCS is a read-only view of an already initialized git repository.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// BranchName returns the name of the currently checked out branch.
	BranchName() (string, error)

	// LastCommitMessage returns the message of the latest commit on the
	// current branch.
	LastCommitMessage() (string, error)

	// LastCommitFiles returns the relative paths of the files changed by the
	// latest commit versus its first parent. For a commit without a parent
	// every tracked file counts as changed.
	LastCommitFiles() ([]string, error)
}

// VCSFactory opens a repository root as a VCS. Opening a root that is not an
// initialized git working tree returns domain.ErrNotARepository.
type VCSFactory interface {
	Open(root string) (VCS, error)
}
