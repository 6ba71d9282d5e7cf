package course_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/checker/internal/adapters/scan"
	"go.trai.ch/checker/internal/adapters/vcs"
	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports"
	"go.trai.ch/checker/internal/core/ports/mocks"
	"go.trai.ch/checker/internal/course"
	"go.uber.org/mock/gomock"
)

type node map[string]any

func writeFS(t *testing.T, dir string, n node) {
	t.Helper()
	for name, v := range n {
		p := filepath.Join(dir, name)
		switch c := v.(type) {
		case string:
			require.NoError(t, os.WriteFile(p, []byte(c), 0o600))
		case node:
			require.NoError(t, os.Mkdir(p, 0o755))
			writeFS(t, p, c)
		default:
			t.Fatalf("unexpected fixture value %T for %s", v, name)
		}
	}
}

func courseFixture() node {
	return node{
		"group1": node{
			"task1_1":       node{".task.yml": "version: 1", "file1_1_1": "", "file1_1_2": ""},
			"task1_2":       node{".task.yml": "", "file1_2_1": "", "file1_2_2": ""},
			"random_folder": node{"file1": "", "file2": ""},
			"extra_file2":   "",
			".group.yml":    "",
		},
		"group2": node{
			"task2_1":       node{".task.yml": "", "file2_1_1": "", "file2_1_2": ""},
			"task2_2":       node{".task.yml": "version: 1"},
			"task2_3":       node{".task.yml": " \n  \n", "file2_3_1": ""},
			"random_folder": node{"file1": "", "file2": ""},
			".group.yml":    "version: 1",
		},
		"group3": node{".group.yml": ""},
		"group4": node{
			"task4_1":    node{".task.yml": "version: 1"},
			".group.yml": "",
		},
		"random_folder": node{"file1": "", "file2": ""},
		"root_task_1":   node{".task.yml": "version: 1", "file1": "", "file2": ""},
		"extra_file1":   "",
	}
}

func testSchedule(t *testing.T) *domain.Schedule {
	t.Helper()
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	start := time.Date(2020, 10, 10, 0, 0, 0, 0, berlin)

	return &domain.Schedule{Groups: []domain.ScheduleGroup{
		{
			Name: "group1", Start: start, Enabled: true,
			Tasks: []domain.ScheduleTask{{Name: "task1_1", Score: 10}, {Name: "task1_2", Score: 20}},
		},
		{
			Name: "group2", Start: start, Enabled: false,
			Tasks: []domain.ScheduleTask{
				{Name: "task2_1", Score: 30},
				{Name: "task2_2", Score: 40},
				{Name: "task2_3", Score: 50},
			},
		},
		{Name: "group3", Start: start, Enabled: true},
		{
			Name: "group4", Start: start, Enabled: true,
			Tasks: []domain.ScheduleTask{{Name: "task4_1", Score: 50}},
		},
		{
			Name: "group_without_folder", Start: start, Enabled: true,
			Tasks: []domain.ScheduleTask{{Name: "root_task_1", Score: 50}},
		},
	}}
}

func newCourse(t *testing.T, root string, logger ports.Logger) *course.Course {
	t.Helper()
	c, err := course.New(root, testSchedule(t), scan.NewScanner(), vcs.NewFactory(), logger)
	require.NoError(t, err)
	return c
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFS(t, root, courseFixture())
	return root
}

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	return mocks.NewMockLogger(gomock.NewController(t))
}

func initRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return repo
}

func commitAll(t *testing.T, repo *git.Repository, msg string) {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))
	_, err = wt.Commit(msg, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "test_user",
			Email: "not@val.id",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func gitRepositoryRoot(t *testing.T) (string, *git.Repository) {
	t.Helper()
	root := repositoryRoot(t)
	repo := initRepo(t, root)
	commitAll(t, repo, "initial commit")
	return root, repo
}

func touchFiles(t *testing.T, root string, files []string) {
	t.Helper()
	for _, name := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("random_text_to_write_in_file "+name), 0o600))
	}
}

func taskNames(tasks []*domain.Task) []string {
	res := make([]string, 0, len(tasks))
	for _, task := range tasks {
		res = append(res, task.Name)
	}
	return res
}

func boolPtr(b bool) *bool {
	return &b
}

func TestNew(t *testing.T) {
	root := repositoryRoot(t)
	c := newCourse(t, root, quietLogger(t))

	assert.Equal(t, root, c.Root())
	assert.Equal(t, testSchedule(t), c.Schedule())
}

func TestNew_BadTaskMarker(t *testing.T) {
	root := repositoryRoot(t)
	marker := filepath.Join(root, "group1", "task1_1", scan.TaskMarkerName)
	require.NoError(t, os.WriteFile(marker, []byte("bad_config"), 0o600))

	_, err := course.New(root, testSchedule(t), scan.NewScanner(), vcs.NewFactory(), quietLogger(t))
	require.ErrorIs(t, err, domain.ErrBadMarker)
}

func TestValidate(t *testing.T) {
	// The strict mock logger doubles as the warning assertion: any Warn call
	// would fail the test.
	c := newCourse(t, repositoryRoot(t), quietLogger(t))
	require.NoError(t, c.Validate())
}

func TestValidate_MissingTask(t *testing.T) {
	root := repositoryRoot(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "group1", "task1_1")))

	c := newCourse(t, root, quietLogger(t))
	err := c.Validate()
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestValidate_MissingRootTask(t *testing.T) {
	root := repositoryRoot(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "root_task_1")))

	c := newCourse(t, root, quietLogger(t))
	err := c.Validate()
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestValidate_MissingGroupWarnsOnly(t *testing.T) {
	root := repositoryRoot(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "group3")))

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	c := newCourse(t, root, logger)
	require.NoError(t, c.Validate())
}

func TestGetGroups(t *testing.T) {
	tests := []struct {
		name    string
		enabled *bool
		want    int
	}{
		{name: "all", enabled: nil, want: 4},
		{name: "enabled", enabled: boolPtr(true), want: 3},
		{name: "disabled", enabled: boolPtr(false), want: 1},
	}

	c := newCourse(t, repositoryRoot(t), quietLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, c.GetGroups(tt.enabled), tt.want)
		})
	}
}

func TestGetTasks(t *testing.T) {
	tests := []struct {
		name    string
		enabled *bool
		want    int
	}{
		{name: "all", enabled: nil, want: 7},
		{name: "enabled", enabled: boolPtr(true), want: 4},
		{name: "disabled", enabled: boolPtr(false), want: 3},
	}

	c := newCourse(t, repositoryRoot(t), quietLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, c.GetTasks(tt.enabled), tt.want)
		})
	}
}

func TestTaskStateFollowsSchedule(t *testing.T) {
	c := newCourse(t, repositoryRoot(t), quietLogger(t))

	for _, task := range c.GetTasks(nil) {
		if task.Group != nil {
			assert.Equal(t, task.Group.Enabled, task.Enabled, "task %s", task.Name)
		}
	}

	enabled := true
	for _, task := range c.GetTasks(&enabled) {
		switch task.Name {
		case "task1_1":
			assert.Equal(t, 10, task.Score)
		case "task1_2":
			assert.Equal(t, 20, task.Score)
		case "task4_1", "root_task_1":
			assert.Equal(t, 50, task.Score)
		}
	}
}

func TestDetectChanges_NotARepository(t *testing.T) {
	c := newCourse(t, repositoryRoot(t), quietLogger(t))

	_, err := c.DetectChanges(domain.DetectByCommitMessage)
	require.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestDetectChanges_ByBranchName(t *testing.T) {
	tests := []struct {
		branch       string
		changedFiles []string
		want         []string
	}{
		{branch: "task1_1", changedFiles: []string{"group1/task1_1/file1_1_1"}, want: []string{"task1_1"}},
		{
			branch:       "task1_1",
			changedFiles: []string{"group1/task1_1/file1_1_1", "random_file.txt"},
			want:         []string{"task1_1"},
		},
		// group2 is disabled
		{branch: "task2_1", changedFiles: []string{"group2/task2_1/file1_1_1"}, want: []string{}},
		{branch: "not_a_task", changedFiles: []string{"group2/task2_1/file2_1_1"}, want: []string{}},
		{branch: "root_task_1", changedFiles: []string{"root_task_1/file1"}, want: []string{"root_task_1"}},
		{branch: "root_task_1", changedFiles: []string{}, want: []string{"root_task_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			root, repo := gitRepositoryRoot(t)
			c := newCourse(t, root, quietLogger(t))

			wt, err := repo.Worktree()
			require.NoError(t, err)
			require.NoError(t, wt.Checkout(&git.CheckoutOptions{
				Branch: plumbing.NewBranchReferenceName(tt.branch),
				Create: true,
			}))
			touchFiles(t, root, tt.changedFiles)
			commitAll(t, repo, "random commit message")

			changed, err := c.DetectChanges(domain.DetectByBranchName)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, taskNames(changed))
		})
	}
}

func TestDetectChanges_ByCommitMessage(t *testing.T) {
	tests := []struct {
		message      string
		changedFiles []string
		want         []string
	}{
		{message: "task1_1", changedFiles: []string{"group1/task1_1/file1_1_1"}, want: []string{"task1_1"}},
		{message: "fixses in task1_1", changedFiles: []string{"group1/task1_1/file1_1_1"}, want: []string{"task1_1"}},
		{
			message:      "task1_1 some commit",
			changedFiles: []string{"group1/task1_1/file1_1_1", "random_file.txt"},
			want:         []string{"task1_1"},
		},
		// group2 is disabled
		{message: "add fixes for task2_1", changedFiles: []string{"group2/task2_1/file1_1_1"}, want: []string{}},
		{message: "    not_a_task", changedFiles: []string{"group2/task2_1/file2_1_1"}, want: []string{}},
		{message: "root_task_1", changedFiles: []string{"root_task_1/file1"}, want: []string{"root_task_1"}},
		{message: "my root_task_1 is really cool", changedFiles: []string{}, want: []string{"root_task_1"}},
		{
			message:      "my root_task_1 and task1_1 and not enabled task2_1",
			changedFiles: []string{"group2/task2_1/file2_1_1"},
			want:         []string{"root_task_1", "task1_1"},
		},
		{message: "commit root_task_1 and some more", changedFiles: []string{}, want: []string{"root_task_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			root, repo := gitRepositoryRoot(t)
			c := newCourse(t, root, quietLogger(t))

			touchFiles(t, root, tt.changedFiles)
			commitAll(t, repo, tt.message)

			changed, err := c.DetectChanges(domain.DetectByCommitMessage)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, taskNames(changed))
		})
	}
}

func TestDetectChanges_ByLastCommitChanges(t *testing.T) {
	tests := []struct {
		name         string
		changedFiles []string
		want         []string
	}{
		{name: "single task", changedFiles: []string{"group1/task1_1/file.txt"}, want: []string{"task1_1"}},
		{
			name:         "noise around task",
			changedFiles: []string{"group1/task1_1/file.txt", "random_file.txt"},
			want:         []string{"task1_1"},
		},
		{name: "disabled task", changedFiles: []string{"group2/task2_1/file.txt"}, want: []string{}},
		{name: "outside tasks", changedFiles: []string{"some_root_file", "random_folder/random_file.txt"}, want: []string{}},
		{
			name:         "mixed",
			changedFiles: []string{"group2/task2_1/file2_1_1.txt", "group1/task1_1/file.txt", "root_task_1/some.txt"},
			want:         []string{"task1_1", "root_task_1"},
		},
		{name: "root task", changedFiles: []string{"root_task_1/file1.txt"}, want: []string{"root_task_1"}},
		{name: "empty commit", changedFiles: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, repo := gitRepositoryRoot(t)
			c := newCourse(t, root, quietLogger(t))

			touchFiles(t, root, tt.changedFiles)
			commitAll(t, repo, "random commit message")

			changed, err := c.DetectChanges(domain.DetectByLastCommitChanges)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, taskNames(changed))
		})
	}
}
