package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// DefaultTimeout bounds every request so a stalled backend surfaces as a
// retrievable error instead of a hang.
const DefaultTimeout = 15 * time.Second

// Client talks to the year-in-motion backend. The backend identifies the
// session by cookie, so all calls share one cookie jar.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx response from the backend. Detail carries the
// backend's message when present, the HTTP status text otherwise.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Detail)
}

// IsAuthError reports whether the backend rejected our session.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// GetSummary fetches the whole-period rollup for the given filter.
func (c *Client) GetSummary(ctx context.Context, filter ActivityFilter) (*Summary, error) {
	var out Summary
	if err := c.getJSON(ctx, "/api/summary", filterParams(filter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrends fetches the weekly/monthly/daily series for the given filter.
func (c *Client) GetTrends(ctx context.Context, filter ActivityFilter) (*Trends, error) {
	var out Trends
	if err := c.getJSON(ctx, "/api/trends", filterParams(filter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHighlights fetches the ranked highlight lists for the given filter.
func (c *Client) GetHighlights(ctx context.Context, filter ActivityFilter) (*Highlights, error) {
	var out Highlights
	if err := c.getJSON(ctx, "/api/highlights", filterParams(filter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFacts fetches the narrative fun facts for the given filter.
func (c *Client) GetFacts(ctx context.Context, filter ActivityFilter) (*Facts, error) {
	var out Facts
	if err := c.getJSON(ctx, "/api/facts", filterParams(filter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWrapped fetches the year-in-review payload for the given filter.
func (c *Client) GetWrapped(ctx context.Context, filter ActivityFilter) (*Wrapped, error) {
	var out Wrapped
	if err := c.getJSON(ctx, "/api/wrapped", filterParams(filter), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDayActivities fetches the activities of a single day. date must be in
// YYYY-MM-DD form.
func (c *Client) GetDayActivities(ctx context.Context, filter ActivityFilter, date string) ([]ActivityHighlight, error) {
	var out []ActivityHighlight
	if err := c.getJSON(ctx, "/api/day/"+url.PathEscape(date), filterParams(filter), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPeriodActivities fetches the activities inside an inclusive date range.
// start and end must be in YYYY-MM-DD form.
func (c *Client) GetPeriodActivities(ctx context.Context, filter ActivityFilter, start, end string) ([]ActivityHighlight, error) {
	params := filterParams(filter)
	params.Set("start", start)
	params.Set("end", end)
	var out []ActivityHighlight
	if err := c.getJSON(ctx, "/api/period", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAuthURL fetches the Strava OAuth redirect URL from the backend.
func (c *Client) GetAuthURL(ctx context.Context) (string, error) {
	var out AuthURL
	if err := c.getJSON(ctx, "/api/auth/strava/url", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ProbeSession asks the backend to establish (or confirm) the session
// cookie. The response body is opaque; only success matters.
func (c *Client) ProbeSession(ctx context.Context) error {
	resp, err := c.get(ctx, "/api/session", nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func filterParams(filter ActivityFilter) url.Values {
	params := url.Values{}
	params.Set("activity_type", string(filter))
	return params
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return resp, nil
}

// decodeError reads a non-2xx body as {"detail": "..."}, falling back to
// the status text when the field is absent or the body is not JSON.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     http.StatusText(resp.StatusCode),
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
