// Package jira talks to the issue tracker: credential resolution, a minimal
// REST client, and the session lifecycle around it.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestRate is the tracker request budget in requests per second
// when the caller does not configure one.
const DefaultRequestRate = 5.0

// Client is a minimal Jira REST v2 client covering the lookups this tool
// needs. Construct it through Connect.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	mode       AuthMode
}

// ClientOptions tunes Connect. The zero value gives sensible defaults.
type ClientOptions struct {
	// HTTPClient overrides the default client (30 second timeout).
	HTTPClient *http.Client

	// RequestsPerSecond throttles tracker calls so reconciliation runs do
	// not hammer a shared server. Zero means DefaultRequestRate.
	RequestsPerSecond float64
}

// Connect validates serverURL, applies the auth mode, and probes the server
// so bad credentials and unreachable hosts surface here rather than on the
// first issue lookup. One attempt, no retries.
func Connect(ctx context.Context, mode AuthMode, serverURL string, opts ClientOptions) (*Client, error) {
	base, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q must use http or https", serverURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestRate
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(base.String(), "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		mode:       mode,
	}
	if err := c.probe(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// probe performs a cheap request that exercises the configured credentials.
// Anonymous mode hits the public server-info endpoint instead, since the
// identity endpoint requires authentication.
func (c *Client) probe(ctx context.Context) error {
	path := "/rest/api/2/myself"
	if c.mode.Kind == AuthAnonymous {
		path = "/rest/api/2/serverinfo"
	}
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tracker rejected %s connection: %s", c.mode.Kind, resp.Status)
	}
	return nil
}

// Issue fetches one issue with its links. A 404 maps to *IssueNotFoundError.
func (c *Client) Issue(ctx context.Context, key string) (*Issue, error) {
	resp, err := c.get(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"?fields=issuelinks")
	if err != nil {
		return nil, fmt.Errorf("fetching issue %s: %w", key, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &IssueNotFoundError{Key: key}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching issue %s: tracker returned %s", key, resp.Status)
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("decoding issue %s: %w", key, err)
	}
	return &issue, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	switch c.mode.Kind {
	case AuthBasic:
		req.SetBasicAuth(c.mode.Basic.Username, c.mode.Basic.Password)
	case AuthToken:
		// Personal access tokens ride in a bearer header. The remaining
		// oauth fields are validated by ResolveAuth but not sent on the
		// wire; request signing is not implemented.
		req.Header.Set("Authorization", "Bearer "+c.mode.Token.AccessToken)
	}
	return c.httpClient.Do(req)
}
