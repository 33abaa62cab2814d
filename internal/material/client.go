package material

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Tutorial is one piece of source material from the content service.
type Tutorial struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Client talks to the content service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a content service client. The base URL should carry
// scheme and host, e.g. "http://localhost:4000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type tutorialEnvelope struct {
	Data Tutorial `json:"data"`
}

// FetchTutorial retrieves the tutorial and returns its extracted plain
// text alongside its title. Returns ErrNotFound for unknown IDs and
// ErrEmptyMaterial when the tutorial has no text after extraction.
func (c *Client) FetchTutorial(ctx context.Context, id string) (*Tutorial, error) {
	var env tutorialEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/tutorials/%s", c.baseURL, url.PathEscape(id)), &env); err != nil {
		return nil, err
	}

	text, err := ExtractText(env.Data.Content)
	if err != nil {
		return nil, err
	}

	t := env.Data
	t.ID = id
	t.Content = text
	return &t, nil
}

type preferencesEnvelope struct {
	Data Preferences `json:"data"`
}

// FetchPreferences retrieves a learner's display preferences. Any
// failure, including an unknown learner, yields the defaults.
func (c *Client) FetchPreferences(ctx context.Context, userID string) Preferences {
	var env preferencesEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s/preferences", c.baseURL, url.PathEscape(userID)), &env); err != nil {
		return DefaultPreferences()
	}

	p := env.Data
	if p.Theme == "" || p.FontSize == "" || p.Layout == "" {
		return DefaultPreferences()
	}
	return p
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content service request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("content service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode content service response: %w", err)
	}
	return nil
}
