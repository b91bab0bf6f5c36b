package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
)

const (
	testStoryID = "4ac0160a-b132-440e-9cdf-135d7a91d6dc"
	testTaskID  = "0d7c3a64-2f4e-4b8a-9c1d-5e6f7a8b9c0d"
)

func withStoryID(r *http.Request, id string) *http.Request {
	return withChiParams(r, map[string]string{handlers.ParamStoryID: id})
}

func withTaskID(r *http.Request, id string) *http.Request {
	return withChiParams(r, map[string]string{handlers.ParamTaskID: id})
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validStory() story.Story {
	return story.Story{
		ID:    uuid.MustParse(testStoryID),
		Name:  "Books To Read",
		Owner: "github.com/carp-cobain",
	}
}

func validTask() task.Task {
	return task.Task{
		ID:      uuid.MustParse(testTaskID),
		StoryID: uuid.MustParse(testStoryID),
		Name:    "Blood Meridian",
		Status:  task.StatusIncomplete,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
