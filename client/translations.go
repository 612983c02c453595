package client

import (
	"context"
	"fmt"
)

// CreateTranslationRequest holds parameters for a new translation.
type CreateTranslationRequest struct {
	KeyID   string
	Content string
	// LanguageID targets a specific project language. Nil sends a JSON
	// null, which the server resolves to the project's default language;
	// the two are not interchangeable.
	LanguageID *string
}

// CreateTranslation creates a translation for a key.
func (c *Client) CreateTranslation(ctx context.Context, projectID string, req CreateTranslationRequest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.post(ctx, fmt.Sprintf("projects/%s/translations", projectID), map[string]any{
		"language_id": req.LanguageID,
		"key_id":      req.KeyID,
		"translation": map[string]any{
			"content": req.Content,
		},
	})
}
