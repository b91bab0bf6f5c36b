package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

var (
	testStoryID = uuid.MustParse("4ac0160a-b132-440e-9cdf-135d7a91d6dc")
	testTaskID  = uuid.MustParse("0d7c3a64-2f4e-4b8a-9c1d-5e6f7a8b9c0d")
)

func TestToTaskResponse_JSONShape(t *testing.T) {
	t.Parallel()

	tk := task.Task{ID: testTaskID, StoryID: testStoryID, Name: "Blood Meridian", Status: task.StatusComplete}

	raw, err := json.Marshal(ToTaskResponse(&tk))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"task_id":"0d7c3a64-2f4e-4b8a-9c1d-5e6f7a8b9c0d","story_id":"4ac0160a-b132-440e-9cdf-135d7a91d6dc",` +
		`"name":"Blood Meridian","status":"complete","complete":true}`
	if string(raw) != want {
		t.Errorf("JSON = %s\nwant   %s", raw, want)
	}
}

func TestToStoryListResponse(t *testing.T) {
	t.Parallel()

	t.Run("empty list encodes as array", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(ToStoryListResponse(nil))
		if err != nil {
			t.Fatalf("Marshal error = %v", err)
		}
		if string(raw) != `{"stories":[],"count":0}` {
			t.Errorf("JSON = %s", raw)
		}
	})

	t.Run("count and order", func(t *testing.T) {
		t.Parallel()

		resp := ToStoryListResponse([]story.Story{
			{ID: testStoryID, Name: "First", Owner: "alice"},
			{ID: uuid.Nil, Name: "Second", Owner: "alice"},
		})
		if resp.Count != 2 || resp.Stories[0].Name != "First" || resp.Stories[1].Name != "Second" {
			t.Errorf("ToStoryListResponse() = %+v", resp)
		}
	})
}

func TestTaskResponse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, status := range []task.Status{task.StatusIncomplete, task.StatusComplete} {
		in := task.Task{ID: testTaskID, StoryID: testStoryID, Name: "Laundry", Status: status}

		out, err := ToTaskResponse(&in).Task()
		if err != nil {
			t.Fatalf("Task() error = %v", err)
		}
		if out != in {
			t.Errorf("round trip = %+v, want %+v", out, in)
		}
	}
}

func TestResponseToDomain_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := (StoryResponse{ID: "nope"}).Story(); err == nil {
		t.Error("StoryResponse.Story() with bad id error = nil")
	}
	if _, err := (TaskResponse{ID: testTaskID.String(), StoryID: "nope"}).Task(); err == nil {
		t.Error("TaskResponse.Task() with bad story id error = nil")
	}
	if _, err := (TaskResponse{ID: testTaskID.String(), StoryID: testStoryID.String(), Status: "archived"}).Task(); err == nil {
		t.Error("TaskResponse.Task() with bad status error = nil")
	}
}
