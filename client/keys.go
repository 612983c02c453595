package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// Key operations - all methods operate directly on Client

// KeyFilter narrows a GetKeys listing. All six fields are always sent
// as query parameters; a zero Page or PerPage falls back to the API
// defaults of 1 and 10.
type KeyFilter struct {
	Page               int
	PerPage            int
	CaseSensitive      bool
	OnlyHTMLEnabled    bool
	OnlyUntranslated   bool
	OnlyWithOverwrites bool
}

// CreateKeyRequest holds parameters for a new translation key.
type CreateKeyRequest struct {
	Name        string
	Description string
	// DefaultLanguageTranslation, when non-empty, additionally creates a
	// translation for the project's default language once the key exists.
	DefaultLanguageTranslation string
}

// CreateKeyResult is the composite outcome of CreateKey: the key
// creation itself plus an optional note about the follow-up translation.
type CreateKeyResult struct {
	Key *Result
	// TranslationErr records a rejected follow-up translation. It never
	// fails the key creation.
	TranslationErr *APIError
}

const codeNoDefaultLanguage = "NO_DEFAULT_LANGUAGE_SPECIFIED"

// GetKeys lists the translation keys of a project.
func (c *Client) GetKeys(ctx context.Context, projectID string, filter KeyFilter) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage == 0 {
		perPage = 10
	}
	query := map[string]any{
		"page":                 page,
		"per_page":             perPage,
		"case_sensitive":       filter.CaseSensitive,
		"only_html_enabled":    filter.OnlyHTMLEnabled,
		"only_untranslated":    filter.OnlyUntranslated,
		"only_with_overwrites": filter.OnlyWithOverwrites,
	}
	return c.get(ctx, fmt.Sprintf("projects/%s/keys", projectID), query)
}

// CreateKey creates a new key for a project. When the server accepts
// the key and req.DefaultLanguageTranslation is set, one follow-up
// CreateTranslation is issued with the new key's id. A follow-up
// rejected with NO_DEFAULT_LANGUAGE_SPECIFIED is logged and recorded on
// the composite result, but the key creation still succeeds.
func (c *Client) CreateKey(ctx context.Context, projectID string, req CreateKeyRequest) (*CreateKeyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := c.post(ctx, fmt.Sprintf("projects/%s/keys", projectID), map[string]any{
		"name":        req.Name,
		"description": req.Description,
	})
	if err != nil {
		return nil, err
	}

	out := &CreateKeyResult{Key: key}
	if !key.OK() || !key.HasData() || req.DefaultLanguageTranslation == "" {
		return out, nil
	}

	var created struct {
		Attributes struct {
			ID string `json:"id"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(key.Data, &created); err != nil {
		c.log.Error().Err(err).Str("project_id", projectID).Msg("decode created key")
		return nil, err
	}

	translation, err := c.CreateTranslation(ctx, projectID, CreateTranslationRequest{
		KeyID:   created.Attributes.ID,
		Content: req.DefaultLanguageTranslation,
	})
	if err != nil {
		return nil, err
	}
	if translation.Err != nil {
		if translation.Err.Code == codeNoDefaultLanguage {
			c.log.Error().Str("project_id", projectID).Msg("you need to define a default language if you want to add translations for your default language directly when creating a new key")
		}
		out.TranslationErr = translation.Err
	}
	return out, nil
}

// UpdateKey updates the name and description of an existing key.
func (c *Client) UpdateKey(ctx context.Context, projectID, keyID, name, description string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.put(ctx, fmt.Sprintf("projects/%s/keys/%s", projectID, keyID), map[string]any{
		"name":        name,
		"description": description,
	})
}

// DeleteKeys deletes the given keys from a project.
func (c *Client) DeleteKeys(ctx context.Context, projectID string, keys []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.delete(ctx, fmt.Sprintf("projects/%s/keys", projectID), map[string]any{
		"keys": keys,
	})
}
