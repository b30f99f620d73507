package runpod

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxErrorBodyBytes caps how much of an error response body is carried
// into RemoteCallError messages.
const maxErrorBodyBytes = 512

// postJSON sends an HTTP POST request to the RunPod API.
// It marshals the given body as JSON, attaches required headers,
// maps HTTP and transport failures to RemoteCallError, and decodes the
// response JSON into `out`.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &RemoteCallError{Message: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return &RemoteCallError{Message: "build request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	// Client timeout is configured in NewClient; ctx may shorten it further.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteCallError{Message: "http error", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &RemoteCallError{
			StatusCode: resp.StatusCode,
			Message:    readBodyExcerpt(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteCallError{StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}

	return nil
}

// readBodyExcerpt returns a trimmed prefix of an error response body.
func readBodyExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	return strings.TrimSpace(string(b))
}
