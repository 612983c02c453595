package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ------------------------------
// Typed operation results
// ------------------------------

// APIError is a business-rule rejection the server encodes inside a
// 200/400 response body. Code is set when the error field is a bare
// string code (e.g. "NO_DEFAULT_LANGUAGE_SPECIFIED"); Details carries
// the raw error JSON when the server sends a structured value instead.
type APIError struct {
	Code    string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return "texterify: " + e.Code
	}
	return "texterify: " + string(e.Details)
}

// Result is the decoded outcome of a JSON operation. The server
// self-describes success and failure inside the body, so a Result with
// a non-nil Err is still a normal return value, not a Go error: a 400
// with {"error":"SOME_CODE"} decodes to Err.Code == "SOME_CODE" and the
// call itself succeeds.
type Result struct {
	StatusCode int
	Body       json.RawMessage // response body, verbatim
	Data       json.RawMessage // "data" field, if present
	Err        *APIError       // "error" field, if present
}

// OK reports whether the server accepted the operation.
func (r *Result) OK() bool { return r.Err == nil }

// HasData reports whether the response carried a non-null data field.
func (r *Result) HasData() bool {
	return len(r.Data) > 0 && string(r.Data) != "null"
}

// DecodeData unmarshals the data field into v.
func (r *Result) DecodeData(v any) error {
	if !r.HasData() {
		return fmt.Errorf("response has no data field")
	}
	return json.Unmarshal(r.Data, v)
}

// newResult decodes a response body into a Result. Bodies that are not
// JSON objects (e.g. bare arrays) keep only the verbatim Body; malformed
// JSON is an error.
func newResult(status int, body []byte) (*Result, error) {
	r := &Result{StatusCode: status, Body: append(json.RawMessage(nil), body...)}

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
		return r, nil
	}

	r.Data = envelope.Data
	// An empty-string error field counts as no error, the same as null.
	if len(envelope.Error) > 0 && string(envelope.Error) != "null" && string(envelope.Error) != `""` {
		apiErr := &APIError{Details: envelope.Error}
		var code string
		if json.Unmarshal(envelope.Error, &code) == nil {
			apiErr.Code = code
		}
		r.Err = apiErr
	}
	return r, nil
}
