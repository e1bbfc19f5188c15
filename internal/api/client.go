// Package api implements the client for the shorts backend.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shorts/internal/httputil"
	"shorts/internal/media"
)

// Client talks to the shorts backend over its two JSON endpoints.
type Client struct {
	base   string // e.g., "http://localhost:8080"
	client *http.Client
}

// New creates a backend client for the given base URL.
func New(base string) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		client: httputil.NewClient(),
	}
}

// APIError is a backend-reported failure. The backend message, when present,
// is shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Shorts fetches the full list of video records. The caller replaces any
// previously held list wholesale.
func (c *Client) Shorts() ([]media.Short, error) {
	url := httputil.BuildURL(c.base, "api", "shorts")

	body, err := httputil.GetJSON(c.client, url)
	if err != nil {
		return nil, fmt.Errorf("fetching shorts: %w", err)
	}

	var shorts []media.Short
	if err := json.Unmarshal(body, &shorts); err != nil {
		return nil, fmt.Errorf("parsing shorts list: %w", err)
	}

	return shorts, nil
}

// Upload submits a new video link. The request is validated locally before
// any network call; an empty link never reaches the backend. On success the
// created record is returned when the backend includes one in the response.
func (c *Client) Upload(req media.UploadRequest) (*media.Short, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.VideoLink = strings.TrimSpace(req.VideoLink)
	if strings.TrimSpace(req.Name) == "" {
		req.Name = media.UntitledName
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding upload request: %w", err)
	}

	url := httputil.BuildURL(c.base, "api", "upload")
	body, status, err := httputil.PostJSON(c.client, url, payload)
	if err != nil {
		return nil, fmt.Errorf("uploading video link: %w", err)
	}

	if status < 200 || status > 299 {
		apiErr := &APIError{Status: status}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return nil, apiErr
	}

	// Some deployments answer with a bare acknowledgement instead of the
	// created record; that is still a success.
	var created media.Short
	if err := json.Unmarshal(body, &created); err != nil || created.ID == "" {
		return nil, nil
	}
	return &created, nil
}
