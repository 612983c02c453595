package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
)

// ImportProject uploads a translation file into a project for one
// language. The file is read in full before the request is built and
// sent base64-encoded under the "file" field; read errors are returned
// to the caller untouched.
func (c *Client) ImportProject(ctx context.Context, projectID, languageID, filePath string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, fmt.Sprintf("projects/%s/import", projectID), map[string]any{
		"language_id": languageID,
		"file":        base64.StdEncoding.EncodeToString(raw),
	})
}
