package client

import (
	"context"
	"fmt"
	"net/http"
)

// ExportProject downloads a project export built with the given export
// configuration. The returned response is live and unread - the caller
// owns the body and must close it. Extra export options are passed as
// query parameters.
func (c *Client) ExportProject(ctx context.Context, projectID, exportConfigID string, options map[string]any) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.download(ctx, fmt.Sprintf("projects/%s/exports/%s", projectID, exportConfigID), options)
}
