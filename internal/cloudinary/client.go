// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cloudinary provides a minimal HTTP client for the Cloudinary
// Admin and Search APIs: context-bearing paginated search, immediate
// subfolder listing, and the upload signature primitive. Only the calls
// the catalog needs are implemented.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the hosted Cloudinary API endpoint. Tests override it
// with an httptest server URL.
const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

// Config holds the credentials for one Cloudinary account.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
}

// Client talks to the Cloudinary API for a single account.
type Client struct {
	config Config
	client *http.Client
}

// New creates a Cloudinary client. Outbound calls are bounded by the HTTP
// client timeout so a stuck upstream surfaces as an error instead of a hang.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Resource is one asset as returned by the Search API.
type Resource struct {
	PublicID  string          `json:"public_id"`
	Format    string          `json:"format"`
	SecureURL string          `json:"secure_url"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	CreatedAt time.Time       `json:"created_at"`
	Context   ResourceContext `json:"context"`
}

// ResourceContext is the free-form key/value metadata attached to an asset.
// The Search API returns it flat ({"price":"100"}) while the Admin API nests
// it under "custom"; UnmarshalJSON accepts both shapes.
type ResourceContext map[string]string

// UnmarshalJSON flattens the two context encodings into a plain map.
func (rc *ResourceContext) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(map[string]string, len(raw))
	for key, val := range raw {
		if key == "custom" {
			var nested map[string]string
			if err := json.Unmarshal(val, &nested); err == nil {
				for k, v := range nested {
					out[k] = v
				}
				continue
			}
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			// Non-string values (numbers etc.) are kept verbatim.
			s = string(val)
		}
		out[key] = s
	}

	*rc = out
	return nil
}

// SearchRequest is the body of a Search API call.
type SearchRequest struct {
	Expression string              `json:"expression"`
	MaxResults int                 `json:"max_results,omitempty"`
	NextCursor string              `json:"next_cursor,omitempty"`
	SortBy     []map[string]string `json:"sort_by,omitempty"`
	WithField  []string            `json:"with_field,omitempty"`
}

// SearchResult is one page of search results. A non-empty NextCursor means
// more pages exist.
type SearchResult struct {
	TotalCount int        `json:"total_count"`
	NextCursor string     `json:"next_cursor"`
	Resources  []Resource `json:"resources"`
}

// Folder is one entry from the folder-listing API.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// foldersResponse wraps the folder-listing payload.
type foldersResponse struct {
	Folders []Folder `json:"folders"`
}

// Search executes a Search API query (POST /resources/search) and returns
// one page of results.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary marshal search: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/resources/search", c.config.BaseURL, c.config.CloudName)
	body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cloudinary unmarshal search: %w", err)
	}
	return &result, nil
}

// SubFolders lists the immediate child folders of the given path
// (GET /folders/{path}). Deeper descendants are not included.
func (c *Client) SubFolders(ctx context.Context, path string) ([]Folder, error) {
	endpoint := fmt.Sprintf("%s/%s/folders/%s", c.config.BaseURL, c.config.CloudName, url.PathEscape(path))
	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result foldersResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cloudinary unmarshal folders: %w", err)
	}
	return result.Folders, nil
}

// do performs an authenticated API call and returns the response body.
// Admin and Search API calls use basic auth with the API key and secret.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("cloudinary request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.config.APIKey, c.config.APISecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cloudinary API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// CloudName returns the configured account name, exposed to clients that
// perform direct uploads.
func (c *Client) CloudName() string { return c.config.CloudName }

// APIKey returns the public API key, exposed alongside upload signatures.
func (c *Client) APIKey() string { return c.config.APIKey }
