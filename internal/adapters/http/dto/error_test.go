package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todos-service/internal/domain"
)

func TestDomainErrorToStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &domain.ValidationError{Fields: map[string]string{"name": "empty string"}}, want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("unable to delete task: x: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "store error", err: domain.NewStoreError("InsertStory", errors.New("connection refused")), want: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domainErrorToStatus(tt.err); got != tt.want {
				t.Errorf("domainErrorToStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse_Validation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/stories/abc/tasks", nil)
	err := &domain.ValidationError{Fields: map[string]string{
		"story_id": "invalid UUID length: 3",
		"name":     "empty string",
	}}

	resp := NewErrorResponse(r, err)

	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", resp.Status)
	}
	if resp.Title != "Bad Request" {
		t.Errorf("Title = %q, want %q", resp.Title, "Bad Request")
	}
	if resp.Instance != "/api/v1/stories/abc/tasks" {
		t.Errorf("Instance = %q", resp.Instance)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("Errors len = %d, want 2", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.name" || resp.Errors[1].Location != "path.story_id" {
		t.Errorf("Errors locations = %q, %q, want body.name, path.story_id",
			resp.Errors[0].Location, resp.Errors[1].Location)
	}
}

func TestNewErrorResponse_QueryLocation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/stories", nil)
	resp := NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{"owner": "empty string"}})

	if len(resp.Errors) != 1 || resp.Errors[0].Location != "query.owner" {
		t.Errorf("Errors = %+v, want query.owner", resp.Errors)
	}
}

func TestNewErrorResponse_InternalHidesDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/x", nil)
	resp := NewErrorResponse(r, domain.NewStoreError("GetTask", errors.New("password authentication failed")))

	if resp.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", resp.Status)
	}
	if resp.Detail != "" {
		t.Errorf("Detail = %q, want empty for internal errors", resp.Detail)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/abc/complete", nil)
	rec := httptest.NewRecorder()

	WriteErrorResponse(rec, r, fmt.Errorf("unable to complete task: abc: %w", domain.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if body.Detail != "unable to complete task: abc: not found" {
		t.Errorf("Detail = %q", body.Detail)
	}
}
