package todos

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
)

func TestTranslateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind error
		wantMsg  string
	}{
		{
			name: "not found keeps server detail",
			err: &httpclient.StatusError{
				StatusCode: http.StatusNotFound,
				Body:       []byte(`{"status":404,"detail":"unable to delete task: 1b7c: not found"}`),
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "unable to delete task: 1b7c: not found",
		},
		{
			name:     "not found without body",
			err:      &httpclient.StatusError{StatusCode: http.StatusNotFound},
			wantKind: domain.ErrNotFound,
			wantMsg:  "Not Found: not found",
		},
		{
			name: "bad request without fields",
			err: &httpclient.StatusError{
				StatusCode: http.StatusBadRequest,
				Body:       []byte(`{"status":400,"detail":"invalid argument: malformed JSON"}`),
			},
			wantKind: domain.ErrValidation,
			wantMsg:  "invalid argument: malformed JSON",
		},
		{
			name: "server error",
			err: &httpclient.StatusError{
				Service: "todos-api", Method: http.MethodGet, Path: "/api/v1/stories",
				StatusCode: http.StatusInternalServerError,
			},
			wantKind: domain.ErrInternal,
			wantMsg:  "internal error: todos-api GET /api/v1/stories: HTTP 500",
		},
		{
			name:     "transport error",
			err:      context.DeadlineExceeded,
			wantKind: domain.ErrInternal,
			wantMsg:  "internal error: context deadline exceeded",
		},
	}

	kinds := []error{domain.ErrValidation, domain.ErrNotFound, domain.ErrInternal}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateError(tt.err)
			for _, kind := range kinds {
				if want := kind == tt.wantKind; errors.Is(got, kind) != want {
					t.Errorf("errors.Is(err, %v) = %v, want %v", kind, !want, want)
				}
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTranslateError_ValidationFields(t *testing.T) {
	t.Parallel()

	err := TranslateError(&httpclient.StatusError{
		StatusCode: http.StatusBadRequest,
		Body: []byte(`{"status":400,"errors":[` +
			`{"location":"path.story_id","message":"invalid UUID length: 3"},` +
			`{"location":"body.name","message":"empty string"}]}`),
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if got := verr.Fields["story_id"]; got != "invalid UUID length: 3" {
		t.Errorf("Fields[story_id] = %q", got)
	}
	if got := verr.Fields["name"]; got != "empty string" {
		t.Errorf("Fields[name] = %q", got)
	}
}

func TestTranslateError_Nil(t *testing.T) {
	t.Parallel()

	if err := TranslateError(nil); err != nil {
		t.Errorf("TranslateError(nil) = %v, want nil", err)
	}
}
