// Package todos implements an outbound client for the todos HTTP API. Client
// satisfies ports.TodoService, so callers such as todoctl use the same
// contract and error taxonomy as the in-process service.
package todos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/domain/story"
	"github.com/jsamuelsen11/todos-service/internal/domain/task"
	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoService = (*Client)(nil)

const apiPrefix = "/api/v1"

// Client is the HTTP implementation of ports.TodoService. Retries, circuit
// breaking, rate limiting and tracing come from the underlying
// httpclient.Client.
type Client struct {
	http *httpclient.Client
}

// NewClient creates a Client that sends requests through c. The client's
// base URL should point at the todos API root.
func NewClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// Name identifies the client in health checks.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the state of the client's circuit breaker.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// CreateStory sends POST /api/v1/stories.
func (c *Client) CreateStory(ctx context.Context, name, owner string) (*story.Story, error) {
	var resp dto.StoryResponse
	req := dto.CreateStoryRequest{Name: name, Owner: owner}
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/stories", req, &resp); err != nil {
		return nil, err
	}
	s, err := resp.Story()
	if err != nil {
		return nil, decodeError(err)
	}
	return &s, nil
}

// GetStories sends GET /api/v1/stories?owner=.
func (c *Client) GetStories(ctx context.Context, owner string) ([]story.Story, error) {
	path := apiPrefix + "/stories?" + url.Values{"owner": {owner}}.Encode()

	var resp dto.StoryListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	stories := make([]story.Story, 0, len(resp.Stories))
	for _, item := range resp.Stories {
		s, err := item.Story()
		if err != nil {
			return nil, decodeError(err)
		}
		stories = append(stories, s)
	}
	return stories, nil
}

// DeleteStory sends DELETE /api/v1/stories/{storyId}.
func (c *Client) DeleteStory(ctx context.Context, storyID string) error {
	path, err := storyPath(storyID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateTask sends POST /api/v1/stories/{storyId}/tasks.
func (c *Client) CreateTask(ctx context.Context, storyID, name string) (*task.Task, error) {
	path, err := storyPath(storyID)
	if err != nil {
		return nil, err
	}

	var resp dto.TaskResponse
	req := dto.CreateTaskRequest{Name: name}
	if err := c.do(ctx, http.MethodPost, path+"/tasks", req, &resp); err != nil {
		return nil, err
	}
	t, err := resp.Task()
	if err != nil {
		return nil, decodeError(err)
	}
	return &t, nil
}

// GetTask sends GET /api/v1/tasks/{taskId}.
func (c *Client) GetTask(ctx context.Context, taskID string) (*task.Task, error) {
	path, err := taskPath(taskID)
	if err != nil {
		return nil, err
	}

	var resp dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	t, err := resp.Task()
	if err != nil {
		return nil, decodeError(err)
	}
	return &t, nil
}

// GetTasks sends GET /api/v1/stories/{storyId}/tasks.
func (c *Client) GetTasks(ctx context.Context, storyID string) ([]task.Task, error) {
	path, err := storyPath(storyID)
	if err != nil {
		return nil, err
	}

	var resp dto.TaskListResponse
	if err := c.do(ctx, http.MethodGet, path+"/tasks", nil, &resp); err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(resp.Tasks))
	for _, item := range resp.Tasks {
		t, err := item.Task()
		if err != nil {
			return nil, decodeError(err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CompleteTask sends POST /api/v1/tasks/{taskId}/complete.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	path, err := taskPath(taskID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path+"/complete", nil, nil)
}

// DeleteTask sends DELETE /api/v1/tasks/{taskId}.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	path, err := taskPath(taskID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return TranslateError(c.http.DoJSON(ctx, method, path, in, out))
}

// storyPath and taskPath parse identifiers before building a path. A blank
// id has no route on the server.
func storyPath(raw string) (string, error) {
	id, err := domain.ParseID(raw, "story_id")
	if err != nil {
		return "", err
	}
	return apiPrefix + "/stories/" + id.String(), nil
}

func taskPath(raw string) (string, error) {
	id, err := domain.ParseID(raw, "task_id")
	if err != nil {
		return "", err
	}
	return apiPrefix + "/tasks/" + id.String(), nil
}

func decodeError(err error) error {
	return fmt.Errorf("%w: decoding response: %w", domain.ErrInternal, err)
}
