package client

import (
	"context"
	"fmt"
)

// GetLanguages lists the languages of a project. search filters by
// name; the empty string matches everything and is sent as an empty
// string, never as null.
func (c *Client) GetLanguages(ctx context.Context, projectID, search string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("projects/%s/languages", projectID), map[string]any{
		"search": search,
	})
}
