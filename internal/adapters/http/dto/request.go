package dto

// CreateStoryRequest is the JSON body of POST /api/v1/stories.
type CreateStoryRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// CreateTaskRequest is the JSON body of POST /api/v1/stories/{storyId}/tasks.
// The story comes from the path.
type CreateTaskRequest struct {
	Name string `json:"name"`
}
