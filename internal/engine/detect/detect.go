// Package detect implements the change detection strategies. Each strategy
// is a pure function from the enabled tasks and one piece of repository
// state to the impacted tasks; Changes dispatches on the strategy and pulls
// the state it needs from the VCS port.
package detect

import (
	"regexp"
	"strings"

	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/zerr"
)

// wordToken matches maximal runs of word characters. Commit message matching
// is a case-sensitive comparison of task names against these tokens;
// underscores count as word characters, so a task name never matches inside
// a larger token like "not_a_task".
var wordToken = regexp.MustCompile(`\w+`)

// Changes computes the enabled tasks impacted by the current repository
// state according to the chosen strategy. Callers pass only enabled tasks;
// disabled tasks are never reported.
func Changes(strategy domain.DetectionStrategy, enabled []*domain.Task, vcs ports.VCS) ([]*domain.Task, error) {
	switch strategy {
	case domain.DetectByBranchName:
		branch, err := vcs.BranchName()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read branch name")
		}
		return ByBranchName(enabled, branch), nil
	case domain.DetectByCommitMessage:
		msg, err := vcs.LastCommitMessage()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read last commit message")
		}
		return ByCommitMessage(enabled, msg), nil
	case domain.DetectByLastCommitChanges:
		files, err := vcs.LastCommitFiles()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read last commit files")
		}
		return ByChangedFiles(enabled, files), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStrategy, "strategy", string(strategy))
	}
}

// ByBranchName returns the single task whose name equals the branch name
// verbatim, or nothing. No partial or fuzzy matching.
func ByBranchName(enabled []*domain.Task, branch string) []*domain.Task {
	for _, t := range enabled {
		if t.Name == branch {
			return []*domain.Task{t}
		}
	}
	return nil
}

// ByCommitMessage returns every task whose name occurs as a whole token in
// the commit message.
func ByCommitMessage(enabled []*domain.Task, message string) []*domain.Task {
	tokens := make(map[string]bool)
	for _, tok := range wordToken.FindAllString(message, -1) {
		tokens[tok] = true
	}

	var res []*domain.Task
	for _, t := range enabled {
		if tokens[t.Name] {
			res = append(res, t)
		}
	}
	return res
}

// ByChangedFiles returns every task owning at least one of the changed
// paths. Paths outside any task directory are ignored. Iterating tasks in
// the outer loop keeps the result deduplicated and in discovery order.
func ByChangedFiles(enabled []*domain.Task, files []string) []*domain.Task {
	var res []*domain.Task
	for _, t := range enabled {
		for _, file := range files {
			if underTask(file, t.RelativePath) {
				res = append(res, t)
				break
			}
		}
	}
	return res
}

// underTask matches on path segments, so a task named "task1" does not claim
// a path under "task10".
func underTask(file, taskPath string) bool {
	return file == taskPath || strings.HasPrefix(file, taskPath+"/")
}
