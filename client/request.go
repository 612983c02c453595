package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// StatusError reports a response status outside {200, 400}, the range
// in which the API self-describes outcomes inside the body. Every such
// status raises this one type; a 404 and a 500 differ only in what was
// logged, not in what the caller can match on.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid response status received: %d", e.StatusCode)
}

// queryValue renders one query parameter. Booleans must come out as the
// lowercase literals "true"/"false"; everything else uses its natural
// string form.
func queryValue(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// newGetRequest composes a GET request, folding a non-empty query map
// into the URL.
func (c *Client) newGetRequest(ctx context.Context, path string, query map[string]any) (*http.Request, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		q := url.Values{}
		for k, v := range query {
			q.Set(k, queryValue(v))
		}
		fullURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("build request")
		return nil, err
	}
	c.setHeaders(req)
	return req, nil
}

// newJSONRequest composes a non-GET request with payload marshaled as
// the JSON body. A nil payload sends the literal body `null`, never an
// empty body: the server treats an absent payload differently from an
// empty object, so the distinction is kept.
func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("encode request payload")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("build request")
		return nil, err
	}
	c.setHeaders(req)
	return req, nil
}

func (c *Client) setHeaders(req *http.Request) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

// send dispatches the request and classifies the response status.
// 200 and 400 both count as successful transport; the body describes
// the actual outcome. Anything else closes the body and fails with a
// *StatusError after logging once.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(req.Method).Inc()
		c.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusBadRequest:
		return resp, nil
	case http.StatusNotFound:
		c.log.Error().Int("status", resp.StatusCode).Str("url", req.URL.String()).Msg("the resource could not be found; maybe your auth credentials are wrong or you don't have the permission to access this resource")
	default:
		c.log.Error().Int("status", resp.StatusCode).Str("url", req.URL.String()).Msg("invalid response status received")
	}
	_ = resp.Body.Close()
	return nil, &StatusError{StatusCode: resp.StatusCode}
}

// doJSON sends the request and decodes the body into a Result.
func (c *Client) doJSON(req *http.Request) (*Result, error) {
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("url", req.URL.String()).Msg("read response body")
		return nil, err
	}
	res, err := newResult(resp.StatusCode, body)
	if err != nil {
		c.log.Error().Err(err).Str("url", req.URL.String()).Msg("decode response body")
		return nil, err
	}
	return res, nil
}

// ------------------------------
// Verb helpers
// ------------------------------

func (c *Client) get(ctx context.Context, path string, query map[string]any) (*Result, error) {
	req, err := c.newGetRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Result, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

func (c *Client) put(ctx context.Context, path string, payload any) (*Result, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

func (c *Client) delete(ctx context.Context, path string, payload any) (*Result, error) {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, path, payload)
	if err != nil {
		return nil, err
	}
	return c.doJSON(req)
}

// download sends a GET request and hands back the live response unread.
// The caller owns the body and must close it.
func (c *Client) download(ctx context.Context, path string, query map[string]any) (*http.Response, error) {
	req, err := c.newGetRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}
