package client

import (
	"context"
	"fmt"
)

// Project operations - all methods operate directly on Client

// GetProjects lists the projects the authenticated account can access.
func (c *Client) GetProjects(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.get(ctx, "projects", nil)
}

// GetProject retrieves a single project.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("projects/%s", projectID), nil)
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, name, description string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.post(ctx, "projects", map[string]any{
		"project": map[string]any{
			"name":        name,
			"description": description,
		},
	})
}

// UpdateProject updates a project's name and description. The endpoint
// takes no project id in the path; the server resolves the target from
// the payload.
func (c *Client) UpdateProject(ctx context.Context, name, description string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.put(ctx, "projects", map[string]any{
		"project": map[string]any{
			"name":        name,
			"description": description,
		},
	})
}
