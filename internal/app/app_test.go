package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/checker/internal/app"
	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testTree(t *testing.T) *domain.Tree {
	t.Helper()
	tree := domain.NewTree()

	g := &domain.Group{Name: "group1", RelativePath: "group1"}
	g.Tasks = []*domain.Task{{Name: "task1_1", RelativePath: "group1/task1_1", Group: g}}
	require.NoError(t, tree.AddGroup(g))
	require.NoError(t, tree.AddTask(&domain.Task{Name: "root_task_1", RelativePath: "root_task_1"}))
	return tree
}

func testSchedule() *domain.Schedule {
	return &domain.Schedule{Groups: []domain.ScheduleGroup{
		{
			Name: "group1", Enabled: true,
			Tasks: []domain.ScheduleTask{{Name: "task1_1", Score: 10}},
		},
		{
			Name: "group_without_folder", Enabled: true,
			Tasks: []domain.ScheduleTask{{Name: "root_task_1", Score: 50}},
		},
	}}
}

func TestApp_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockScheduleLoader(ctrl)
	scanner := mocks.NewMockTreeScanner(ctrl)
	factory := mocks.NewMockVCSFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load("schedule.yml").Return(testSchedule(), nil)
	scanner.EXPECT().Scan(".").Return(testTree(t), nil)

	a := app.New(loader, scanner, factory, logger)
	require.NoError(t, a.Validate(".", "schedule.yml"))
}

func TestApp_Validate_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockScheduleLoader(ctrl)
	scanner := mocks.NewMockTreeScanner(ctrl)
	factory := mocks.NewMockVCSFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	loadErr := errors.New("schedule load error")
	loader.EXPECT().Load("schedule.yml").Return(nil, loadErr)

	a := app.New(loader, scanner, factory, logger)
	err := a.Validate(".", "schedule.yml")
	require.ErrorIs(t, err, loadErr)
}

func TestApp_Validate_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockScheduleLoader(ctrl)
	scanner := mocks.NewMockTreeScanner(ctrl)
	factory := mocks.NewMockVCSFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load("schedule.yml").Return(testSchedule(), nil)
	scanner.EXPECT().Scan(".").Return(nil, domain.ErrBadMarker)

	a := app.New(loader, scanner, factory, logger)
	err := a.Validate(".", "schedule.yml")
	require.ErrorIs(t, err, domain.ErrBadMarker)
}

func TestApp_DetectChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockScheduleLoader(ctrl)
	scanner := mocks.NewMockTreeScanner(ctrl)
	factory := mocks.NewMockVCSFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	vcs := mocks.NewMockVCS(ctrl)

	loader.EXPECT().Load("schedule.yml").Return(testSchedule(), nil)
	scanner.EXPECT().Scan(".").Return(testTree(t), nil)
	factory.EXPECT().Open(".").Return(vcs, nil)
	vcs.EXPECT().BranchName().Return("task1_1", nil)

	a := app.New(loader, scanner, factory, logger)
	changed, err := a.DetectChanges(".", "schedule.yml", domain.DetectByBranchName)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, "task1_1", changed[0].Name)
}

func TestApp_DetectChanges_NotARepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockScheduleLoader(ctrl)
	scanner := mocks.NewMockTreeScanner(ctrl)
	factory := mocks.NewMockVCSFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load("schedule.yml").Return(testSchedule(), nil)
	scanner.EXPECT().Scan(".").Return(testTree(t), nil)
	factory.EXPECT().Open(".").Return(nil, domain.ErrNotARepository)

	a := app.New(loader, scanner, factory, logger)
	_, err := a.DetectChanges(".", "schedule.yml", domain.DetectByCommitMessage)
	require.ErrorIs(t, err, domain.ErrNotARepository)
}
