package ladder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jwjr/ladder-mirror/internal/util"
)

const (
	// BaseURL is the ladder service base URL
	BaseURL = "https://www.bgaladder.net"

	// UserAgent identifies this mirror to the ladder service operators
	UserAgent = "ladder-mirror/1.0 (https://github.com/jwjr/ladder-mirror)"

	// RateCalls / RateWindow is the request budget the ladder service asks
	// scrapers to respect: at most 2 calls in any 3 second window
	RateCalls  = 2
	RateWindow = 3 * time.Second
)

// Client issues throttled GET requests against the ladder service.
// There are no automatic retries: a non-success response surfaces as an
// error wrapping util.ErrNotFound and the caller decides whether that is
// fatal (bulk endpoints) or skippable (trace downloads).
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *Limiter
}

// NewClient creates a ladder client with the service's default rate budget
func NewClient() *Client {
	return NewClientWithLimiter(NewLimiter(RateCalls, RateWindow))
}

// NewClientWithLimiter creates a ladder client using the given limiter.
// Tests pass a permissive limiter to avoid real throttle sleeps.
func NewClientWithLimiter(l *Limiter) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		baseURL:   BaseURL,
		userAgent: UserAgent,
		limiter:   l,
	}
}

// SetBaseURL points the client at a different host (used by tests)
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	c.limiter.Wait()

	urlStr := c.baseURL + path
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	util.DebugLog("Requesting %s", urlStr)

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("From", "joe@jwjr.co.uk")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", urlStr, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		util.ErrorLog("Request to %s returned non-200 status code: %d", urlStr, resp.StatusCode)
		return nil, fmt.Errorf("GET %s: status %d: %w", path, resp.StatusCode, util.ErrNotFound)
	}

	return resp, nil
}

// GetJSON fetches a JSON document from the given path into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}

// GetBytes fetches the raw body from the given path
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}

	return data, nil
}

// FetchGliderModels retrieves the bulk glider model list
func (c *Client) FetchGliderModels(ctx context.Context) ([]GliderModelRecord, error) {
	var models []GliderModelRecord
	if err := c.GetJSON(ctx, "/api/Gliders", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// FetchLaunchPoints retrieves the bulk launch point list
func (c *Client) FetchLaunchPoints(ctx context.Context) ([]LaunchPointRecord, error) {
	var points []LaunchPointRecord
	if err := c.GetJSON(ctx, "/api/LaunchPoints", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// FetchClubs retrieves the bulk club list
func (c *Client) FetchClubs(ctx context.Context) ([]ClubRecord, error) {
	var clubs []ClubRecord
	if err := c.GetJSON(ctx, "/api/Clubs", nil, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// FetchActivePilots retrieves the bulk active pilot list
func (c *Client) FetchActivePilots(ctx context.Context) ([]PilotRecord, error) {
	var pilots []PilotRecord
	if err := c.GetJSON(ctx, "/api/ActivePilots", nil, &pilots); err != nil {
		return nil, err
	}
	return pilots, nil
}

// FetchTrace downloads the binary IGC flight log for a ladder flight id
func (c *Client) FetchTrace(ctx context.Context, flightID int64) ([]byte, error) {
	return c.GetBytes(ctx, fmt.Sprintf("/FlightIGC/%d", flightID))
}
