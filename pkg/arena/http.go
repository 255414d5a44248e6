package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// submitAnswerRequest is the JSON request body for answer submission.
type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

// get performs a GET request against the given path segments.
func (c *Client) get(ctx context.Context, params url.Values, segments ...string) ([]byte, error) {
	return c.request(ctx, http.MethodGet, params, nil, segments...)
}

// post performs a POST request with an optional JSON body.
func (c *Client) post(ctx context.Context, params url.Values, body any, segments ...string) ([]byte, error) {
	return c.request(ctx, http.MethodPost, params, body, segments...)
}

// request performs a single round trip and returns the raw response body.
// The team secret is merged into the query parameters under the "secret"
// key, overriding any caller-supplied value of the same name. Non-2xx
// responses are returned as *HTTPError.
func (c *Client) request(ctx context.Context, method string, params url.Values, body any, segments ...string) ([]byte, error) {
	merged := url.Values{}
	for key, vals := range params {
		merged[key] = vals
	}
	merged.Set("secret", c.Secret)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(segments...), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = merged.Encode()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: data}
	}

	return data, nil
}

// endpoint builds the request URL under the fixed api prefix, escaping each
// path segment. A trailing empty segment produces a trailing slash.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}
