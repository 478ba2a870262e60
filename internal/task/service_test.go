package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
)

// MockTaskRepo implements repository.Task
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) CreateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ListTasksByZone(ctx context.Context, zoneID string) ([]domain.Task, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepo) CreateSubmission(ctx context.Context, sub *domain.TaskSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockTaskRepo) GetSubmission(ctx context.Context, submissionID string) (*domain.TaskSubmission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskSubmission), args.Error(1)
}

func (m *MockTaskRepo) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.TaskSubmission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskSubmission), args.Error(1)
}

func (m *MockTaskRepo) ListPendingSubmissions(ctx context.Context, zoneID string) ([]domain.TaskSubmission, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskSubmission), args.Error(1)
}

func (m *MockTaskRepo) HasSubmission(ctx context.Context, userID, taskID string) (bool, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepo) UpdateSubmission(ctx context.Context, sub *domain.TaskSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockUserRepo implements repository.User
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProgressionService implements progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) RecordTaskCompletion(ctx context.Context, userID, zoneID string, xpReward int) (*domain.ZoneProgress, error) {
	args := m.Called(ctx, userID, zoneID, xpReward)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZoneProgress), args.Error(1)
}

func (m *MockProgressionService) GetProgress(ctx context.Context, userID, zoneID string) (*domain.ZoneProgress, error) {
	args := m.Called(ctx, userID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZoneProgress), args.Error(1)
}

func (m *MockProgressionService) GetAllProgress(ctx context.Context, userID string) ([]domain.ZoneProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZoneProgress), args.Error(1)
}

func newTestService(taskRepo *MockTaskRepo, userRepo *MockUserRepo, prog *MockProgressionService, now time.Time) *service {
	svc := NewService(taskRepo, userRepo, prog).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

var (
	teacher = &domain.User{ID: "teacher-1", Role: domain.RoleTeacher}
	student = &domain.User{ID: "student-1", Role: domain.RoleStudent}
)

func TestCreateTaskByTeacher(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, userRepo, prog, now)

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil).Once()
	taskRepo.On("CreateTask", ctx, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Title == "Photosynthesis quiz" && task.CreatedBy == "teacher-1" &&
			task.Difficulty == 2 && task.CreatedAt.Equal(now)
	})).Return(nil).Once()

	task, err := svc.CreateTask(ctx, "teacher-1", CreateTaskInput{
		ZoneID:           "biology",
		Title:            "Photosynthesis quiz",
		Difficulty:       2,
		ExperienceReward: 150,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	taskRepo.AssertExpectations(t)
}

func TestCreateTaskByStudentRejected(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	svc := newTestService(taskRepo, userRepo, new(MockProgressionService), time.Now())

	userRepo.On("GetUserByID", ctx, "student-1").Return(student, nil).Once()

	_, err := svc.CreateTask(ctx, "student-1", CreateTaskInput{
		ZoneID: "biology", Title: "Quiz", Difficulty: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotTeacher)
	taskRepo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestCreateTaskInvalidDifficulty(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	svc := newTestService(taskRepo, userRepo, new(MockProgressionService), time.Now())

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil)

	_, err := svc.CreateTask(ctx, "teacher-1", CreateTaskInput{ZoneID: "biology", Title: "Quiz", Difficulty: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateTask(ctx, "teacher-1", CreateTaskInput{ZoneID: "biology", Title: "Quiz", Difficulty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitCreatesPendingSubmission(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	taskRepo := new(MockTaskRepo)
	svc := newTestService(taskRepo, new(MockUserRepo), new(MockProgressionService), now)

	taskRepo.On("GetTask", ctx, "task-1").Return(&domain.Task{ID: "task-1", ZoneID: "biology"}, nil).Once()
	taskRepo.On("HasSubmission", ctx, "student-1", "task-1").Return(false, nil).Once()
	taskRepo.On("CreateSubmission", ctx, mock.MatchedBy(func(sub *domain.TaskSubmission) bool {
		return sub.Status == domain.SubmissionPending && sub.Content == "my answer" &&
			sub.SubmittedAt.Equal(now)
	})).Return(nil).Once()

	sub, err := svc.Submit(ctx, "student-1", "task-1", "my answer")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPending, sub.Status)
}

func TestSubmitTwiceRejected(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	svc := newTestService(taskRepo, new(MockUserRepo), new(MockProgressionService), time.Now())

	taskRepo.On("GetTask", ctx, "task-1").Return(&domain.Task{ID: "task-1"}, nil).Once()
	taskRepo.On("HasSubmission", ctx, "student-1", "task-1").Return(true, nil).Once()

	_, err := svc.Submit(ctx, "student-1", "task-1", "again")
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
	taskRepo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSubmitUnknownTask(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	svc := newTestService(taskRepo, new(MockUserRepo), new(MockProgressionService), time.Now())

	taskRepo.On("GetTask", ctx, "nope").Return(nil, domain.ErrTaskNotFound).Once()

	_, err := svc.Submit(ctx, "student-1", "nope", "answer")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestGradeApprovalAdvancesProgress(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, userRepo, prog, now)

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil).Once()
	taskRepo.On("GetSubmission", ctx, "sub-1").Return(&domain.TaskSubmission{
		ID: "sub-1", TaskID: "task-1", UserID: "student-1", Status: domain.SubmissionPending,
	}, nil).Once()
	taskRepo.On("GetTask", ctx, "task-1").Return(&domain.Task{
		ID: "task-1", ZoneID: "biology", ExperienceReward: 200,
	}, nil).Once()
	taskRepo.On("UpdateSubmission", ctx, mock.MatchedBy(func(sub *domain.TaskSubmission) bool {
		return sub.Status == domain.SubmissionApproved && *sub.Grade == 5 &&
			sub.GradedBy == "teacher-1" && sub.GradedAt.Equal(now)
	})).Return(nil).Once()
	prog.On("RecordTaskCompletion", ctx, "student-1", "biology", 200).Return(&domain.ZoneProgress{
		UserID: "student-1", ZoneID: "biology", TasksCompleted: 1, Experience: 200, Level: 1,
	}, nil).Once()

	sub, err := svc.Grade(ctx, "teacher-1", "sub-1", true, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, sub.Status)
	prog.AssertExpectations(t)
}

func TestGradeRejectionSkipsProgress(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, userRepo, prog, time.Now())

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil).Once()
	taskRepo.On("GetSubmission", ctx, "sub-1").Return(&domain.TaskSubmission{
		ID: "sub-1", TaskID: "task-1", UserID: "student-1", Status: domain.SubmissionPending,
	}, nil).Once()
	taskRepo.On("GetTask", ctx, "task-1").Return(&domain.Task{ID: "task-1", ZoneID: "biology"}, nil).Once()
	taskRepo.On("UpdateSubmission", ctx, mock.MatchedBy(func(sub *domain.TaskSubmission) bool {
		return sub.Status == domain.SubmissionRejected
	})).Return(nil).Once()

	sub, err := svc.Grade(ctx, "teacher-1", "sub-1", false, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, sub.Status)
	prog.AssertNotCalled(t, "RecordTaskCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGradeByStudentRejected(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	svc := newTestService(taskRepo, userRepo, new(MockProgressionService), time.Now())

	userRepo.On("GetUserByID", ctx, "student-1").Return(student, nil).Once()

	_, err := svc.Grade(ctx, "student-1", "sub-1", true, 5)
	assert.ErrorIs(t, err, domain.ErrNotTeacher)
}

func TestGradeAlreadyGraded(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, userRepo, prog, time.Now())

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil).Once()
	taskRepo.On("GetSubmission", ctx, "sub-1").Return(&domain.TaskSubmission{
		ID: "sub-1", Status: domain.SubmissionApproved,
	}, nil).Once()

	_, err := svc.Grade(ctx, "teacher-1", "sub-1", true, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	prog.AssertNotCalled(t, "RecordTaskCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Two graders can both read the submission as pending; the repository
// write is the tiebreaker. The loser must not award experience.
func TestGradeLostRaceAwardsNothing(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, userRepo, prog, time.Now())

	userRepo.On("GetUserByID", ctx, "teacher-1").Return(teacher, nil).Once()
	taskRepo.On("GetSubmission", ctx, "sub-1").Return(&domain.TaskSubmission{
		ID: "sub-1", TaskID: "task-1", UserID: "student-1", Status: domain.SubmissionPending,
	}, nil).Once()
	taskRepo.On("GetTask", ctx, "task-1").Return(&domain.Task{
		ID: "task-1", ZoneID: "biology", ExperienceReward: 200,
	}, nil).Once()
	taskRepo.On("UpdateSubmission", ctx, mock.Anything).Return(
		fmt.Errorf("%w: submission sub-1 is not pending", domain.ErrInvalidInput)).Once()

	_, err := svc.Grade(ctx, "teacher-1", "sub-1", true, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	prog.AssertNotCalled(t, "RecordTaskCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListPendingTeacherOnly(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	userRepo := new(MockUserRepo)
	svc := newTestService(taskRepo, userRepo, new(MockProgressionService), time.Now())

	userRepo.On("GetUserByID", ctx, "student-1").Return(student, nil).Once()

	_, err := svc.ListPending(ctx, "student-1", "biology")
	assert.ErrorIs(t, err, domain.ErrNotTeacher)
	taskRepo.AssertNotCalled(t, "ListPendingSubmissions", mock.Anything, mock.Anything)
}

func TestListTasksFiltersByViewerLevel(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, new(MockUserRepo), prog, time.Now())

	taskRepo.On("ListTasksByZone", ctx, "biology").Return([]domain.Task{
		{ID: "t-1", RequiredLevel: 0},
		{ID: "t-2", RequiredLevel: 2},
		{ID: "t-3", RequiredLevel: 5},
	}, nil).Once()
	prog.On("GetProgress", ctx, "student-1", "biology").Return(&domain.ZoneProgress{
		UserID: "student-1", ZoneID: "biology", Experience: 1200, Level: 2,
	}, nil).Once()

	tasks, err := svc.ListTasks(ctx, "biology", "student-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t-1", tasks[0].ID)
	assert.Equal(t, "t-2", tasks[1].ID)
}

func TestListTasksWithoutViewerReturnsAll(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepo)
	prog := new(MockProgressionService)
	svc := newTestService(taskRepo, new(MockUserRepo), prog, time.Now())

	taskRepo.On("ListTasksByZone", ctx, "biology").Return([]domain.Task{
		{ID: "t-1", RequiredLevel: 0},
		{ID: "t-3", RequiredLevel: 5},
	}, nil).Once()

	tasks, err := svc.ListTasks(ctx, "biology", "")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	prog.AssertNotCalled(t, "GetProgress", mock.Anything, mock.Anything, mock.Anything)
}
