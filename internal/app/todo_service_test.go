package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
	"github.com/jsamuelsen11/todos-service/mocks"
)

const (
	storyIDStr = "4ac0160a-b132-440e-9cdf-135d7a91d6dc"
	taskIDStr  = "0d7c3a64-2f4e-4b8a-9c1d-5e6f7a8b9c0d"
)

var (
	storyID = uuid.MustParse(storyIDStr)
	taskID  = uuid.MustParse(taskIDStr)

	errStore = domain.NewStoreError("op", errors.New("connection refused"))
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newService(t *testing.T) (*TodoService, *mocks.MockTodoRepository) {
	t.Helper()
	repo := mocks.NewMockTodoRepository(t)
	return NewTodoService(repo, discardLogger()), repo
}

func requireKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
	for _, other := range []error{domain.ErrValidation, domain.ErrNotFound, domain.ErrInternal} {
		if other != kind && errors.Is(err, other) {
			t.Errorf("error = %v also matches %v, want exactly one kind", err, other)
		}
	}
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok || len(verr.Fields) != 1 {
		t.Errorf("ValidationError.Fields = %v, want only %q", verr.Fields, field)
	}
}

// --- NewTodoService ---

func TestNewTodoService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(mocks.NewMockTodoRepository(t), nil)
	if svc.logger == nil {
		t.Fatal("NewTodoService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateStory ---

func TestTodoService_CreateStory(t *testing.T) {
	t.Parallel()

	t.Run("trims and inserts", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)

		want := &story.Story{ID: storyID, Name: "Books To Read", Owner: "alice"}
		repo.EXPECT().InsertStory(mock.Anything, "Books To Read", "alice").Return(want, nil).Once()

		got, err := svc.CreateStory(context.Background(), "  Books To Read ", "\talice\n")
		if err != nil {
			t.Fatalf("CreateStory() error = %v, want nil", err)
		}
		if got != want {
			t.Errorf("CreateStory() = %+v, want %+v", got, want)
		}
	})

	tests := []struct {
		name      string
		storyName string
		owner     string
		wantField string
	}{
		{name: "empty name", storyName: "", owner: "alice", wantField: "name"},
		{name: "blank owner", storyName: "Chores", owner: "   ", wantField: "owner"},
		{name: "both blank reports name", storyName: " ", owner: "", wantField: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newService(t)

			_, err := svc.CreateStory(context.Background(), tt.storyName, tt.owner)
			requireKind(t, err, domain.ErrValidation)
			requireField(t, err, tt.wantField)
		})
	}

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().InsertStory(mock.Anything, "Chores", "alice").Return(nil, errStore).Once()

		_, err := svc.CreateStory(context.Background(), "Chores", "alice")
		requireKind(t, err, domain.ErrInternal)
		if !errors.Is(err, errStore) {
			t.Errorf("error = %v, want unchanged store error", err)
		}
	})
}

// --- GetStories ---

func TestTodoService_GetStories(t *testing.T) {
	t.Parallel()

	t.Run("returns stories", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().SelectStories(mock.Anything, "alice").Return([]story.Story{
			{ID: storyID, Name: "First", Owner: "alice"},
		}, nil).Once()

		got, err := svc.GetStories(context.Background(), " alice ")
		if err != nil {
			t.Fatalf("GetStories() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != storyID {
			t.Errorf("GetStories() = %+v", got)
		}
	})

	t.Run("empty owner", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)

		_, err := svc.GetStories(context.Background(), "")
		requireKind(t, err, domain.ErrValidation)
		requireField(t, err, "owner")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().SelectStories(mock.Anything, "alice").Return(nil, errStore).Once()

		_, err := svc.GetStories(context.Background(), "alice")
		requireKind(t, err, domain.ErrInternal)
	})
}

// --- CreateTask / GetTask / GetTasks ---

func TestTodoService_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("parses id and inserts", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		want := &task.Task{ID: taskID, StoryID: storyID, Name: "Blood Meridian", Status: task.StatusIncomplete}
		repo.EXPECT().InsertTask(mock.Anything, storyID, "Blood Meridian").Return(want, nil).Once()

		got, err := svc.CreateTask(context.Background(), "  4AC0160A-B132-440E-9CDF-135D7A91D6DC ", "Blood Meridian ")
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if got.Status != task.StatusIncomplete {
			t.Errorf("CreateTask().Status = %v, want incomplete", got.Status)
		}
	})

	tests := []struct {
		name      string
		storyID   string
		taskName  string
		wantField string
	}{
		{name: "malformed id", storyID: "4ac0160a", taskName: "x", wantField: "story_id"},
		{name: "empty name", storyID: storyIDStr, taskName: " ", wantField: "name"},
		{name: "both invalid reports story_id", storyID: "", taskName: "", wantField: "story_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newService(t)

			_, err := svc.CreateTask(context.Background(), tt.storyID, tt.taskName)
			requireKind(t, err, domain.ErrValidation)
			requireField(t, err, tt.wantField)
		})
	}
}

func TestTodoService_GetTask(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetTask(mock.Anything, taskID).
			Return(&task.Task{ID: taskID, StoryID: storyID, Name: "x", Status: task.StatusComplete}, nil).Once()

		got, err := svc.GetTask(context.Background(), taskIDStr)
		if err != nil {
			t.Fatalf("GetTask() error = %v", err)
		}
		if !got.IsComplete() {
			t.Errorf("GetTask().IsComplete() = false, want true")
		}
	})

	t.Run("not found propagates", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetTask(mock.Anything, taskID).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.GetTask(context.Background(), taskIDStr)
		requireKind(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)

		_, err := svc.GetTask(context.Background(), "not-a-uuid")
		requireKind(t, err, domain.ErrValidation)
		requireField(t, err, "task_id")
	})
}

func TestTodoService_GetTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().SelectTasks(mock.Anything, storyID).Return([]task.Task{}, nil).Once()

		got, err := svc.GetTasks(context.Background(), storyIDStr)
		if err != nil {
			t.Fatalf("GetTasks() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("GetTasks() = %v, want empty slice", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)

		_, err := svc.GetTasks(context.Background(), "")
		requireKind(t, err, domain.ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().SelectTasks(mock.Anything, storyID).Return(nil, errStore).Once()

		_, err := svc.GetTasks(context.Background(), storyIDStr)
		requireKind(t, err, domain.ErrInternal)
	})
}

// --- Mutations: rows affected to NotFound ---

func TestTodoService_Mutations(t *testing.T) {
	t.Parallel()

	type call func(svc *TodoService) error

	tests := []struct {
		name    string
		expect  func(repo *mocks.MockTodoRepository, n int64, err error)
		call    call
		message string
	}{
		{
			name: "CompleteTask",
			expect: func(repo *mocks.MockTodoRepository, n int64, err error) {
				repo.EXPECT().UpdateTaskStatus(mock.Anything, taskID, task.StatusComplete).Return(n, err).Once()
			},
			call:    func(svc *TodoService) error { return svc.CompleteTask(context.Background(), taskIDStr) },
			message: "unable to complete task: " + taskIDStr,
		},
		{
			name: "DeleteTask",
			expect: func(repo *mocks.MockTodoRepository, n int64, err error) {
				repo.EXPECT().DeleteTask(mock.Anything, taskID).Return(n, err).Once()
			},
			call:    func(svc *TodoService) error { return svc.DeleteTask(context.Background(), taskIDStr) },
			message: "unable to delete task: " + taskIDStr,
		},
		{
			name: "DeleteStory",
			expect: func(repo *mocks.MockTodoRepository, n int64, err error) {
				repo.EXPECT().DeleteStory(mock.Anything, storyID).Return(n, err).Once()
			},
			call:    func(svc *TodoService) error { return svc.DeleteStory(context.Background(), storyIDStr) },
			message: "unable to delete story: " + storyIDStr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" affected", func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.expect(repo, 1, nil)

			if err := tt.call(svc); err != nil {
				t.Errorf("%s() error = %v, want nil", tt.name, err)
			}
		})

		t.Run(tt.name+" zero rows is not found", func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.expect(repo, 0, nil)

			err := tt.call(svc)
			requireKind(t, err, domain.ErrNotFound)
			if want := tt.message + ": not found"; err.Error() != want {
				t.Errorf("%s() error = %q, want %q", tt.name, err.Error(), want)
			}
		})

		t.Run(tt.name+" store failure", func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.expect(repo, 0, errStore)

			requireKind(t, tt.call(svc), domain.ErrInternal)
		})
	}
}

func TestTodoService_Mutations_MalformedID(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	ctx := context.Background()

	for name, err := range map[string]error{
		"CompleteTask": svc.CompleteTask(ctx, "4ac0160a"),
		"DeleteTask":   svc.DeleteTask(ctx, "  "),
		"DeleteStory":  svc.DeleteStory(ctx, "story-1"),
	} {
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s() error = %v, want ErrValidation", name, err)
		}
	}
}
