// Package vcs implements the git adapter on top of go-git. It exposes the
// three read-only queries change detection needs: the current branch name,
// the last commit message and the files touched by the last commit.
package vcs

import (
	"errors"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.VCSFactory = (*Factory)(nil)
	_ ports.VCS        = (*Repository)(nil)
)

// Factory opens repository roots as ports.VCS.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open opens the git repository at root. A root without an initialized
// repository yields domain.ErrNotARepository; that is a broken execution
// environment, not something to retry.
func (f *Factory) Open(root string) (ports.VCS, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, zerr.With(domain.ErrNotARepository, "root", root)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open repository"), "root", root)
	}
	return &Repository{repo: repo}, nil
}

// Repository implements ports.VCS for an opened git repository.
type Repository struct {
	repo *git.Repository
}

// BranchName returns the short name of the currently checked out branch.
func (r *Repository) BranchName() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve HEAD")
	}
	return head.Name().Short(), nil
}

// LastCommitMessage returns the message of the commit HEAD points at.
func (r *Repository) LastCommitMessage() (string, error) {
	commit, err := r.lastCommit()
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// LastCommitFiles returns the paths changed by the HEAD commit versus its
// first parent. A parentless commit is compared against the empty tree, so
// every tracked file counts as changed.
func (r *Repository) LastCommitFiles() ([]string, error) {
	commit, err := r.lastCommit()
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read commit tree")
	}

	if commit.NumParents() == 0 {
		var files []string
		err := tree.Files().ForEach(func(f *object.File) error {
			files = append(files, f.Name)
			return nil
		})
		if err != nil {
			return nil, zerr.Wrap(err, "failed to list commit files")
		}
		sort.Strings(files)
		return files, nil
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve parent commit")
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read parent tree")
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to diff against parent")
	}

	seen := make(map[string]bool)
	for _, change := range changes {
		name := change.To.Name
		if name == "" {
			name = change.From.Name
		}
		seen[name] = true
	}
	files := make([]string, 0, len(seen))
	for name := range seen {
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func (r *Repository) lastCommit() (*object.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve HEAD")
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read HEAD commit")
	}
	return commit, nil
}
