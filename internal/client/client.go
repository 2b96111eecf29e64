package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every request; there is no retry
const DefaultTimeout = 10 * time.Second

// Match is a fixture as served by the REST API. MatchDate is kept as the raw
// string so callers can decide how to treat malformed values.
type Match struct {
	ID           int    `json:"id"`
	SportID      int    `json:"sport_id"`
	SportName    string `json:"sport_name"`
	HomeTeamID   int    `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamID   int    `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name"`
	MatchDate    string `json:"match_date"`
	Status       string `json:"status"`
	HomeScore    int    `json:"home_score"`
	AwayScore    int    `json:"away_score"`
	CreatedAt    string `json:"created_at"`
}

// MatchQuery holds the optional listing filters. Zero values are omitted.
type MatchQuery struct {
	Sport  string
	Status string
	Limit  int
	Offset int
}

func (q MatchQuery) encode() string {
	params := url.Values{}
	if q.Sport != "" {
		params.Set("sport", q.Sport)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	return params.Encode()
}

// APIError is returned for every failed request. Status is zero when no
// response was received.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the sports prediction REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client with the default timeout
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom request timeout
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetMatches fetches a page of matches
func (c *Client) GetMatches(ctx context.Context, query MatchQuery) ([]Match, error) {
	endpoint := "/api/v1/matches"
	if qs := query.encode(); qs != "" {
		endpoint += "?" + qs
	}

	var matches []Match
	if err := c.get(ctx, endpoint, &matches); err != nil {
		log.Printf("[Client] Failed to fetch matches: %v", err)
		return nil, err
	}
	return matches, nil
}

// GetMatchesBySport fetches matches of a sport
func (c *Client) GetMatchesBySport(ctx context.Context, sport string, limit, offset int) ([]Match, error) {
	endpoint := "/api/v1/matches/sport/" + url.PathEscape(sport)
	if qs := (MatchQuery{Limit: limit, Offset: offset}).encode(); qs != "" {
		endpoint += "?" + qs
	}

	var matches []Match
	if err := c.get(ctx, endpoint, &matches); err != nil {
		log.Printf("[Client] Failed to fetch matches for sport %s: %v", sport, err)
		return nil, err
	}
	return matches, nil
}

// GetMatchesByStatus fetches matches in a status
func (c *Client) GetMatchesByStatus(ctx context.Context, status string, limit, offset int) ([]Match, error) {
	endpoint := "/api/v1/matches/status/" + url.PathEscape(status)
	if qs := (MatchQuery{Limit: limit, Offset: offset}).encode(); qs != "" {
		endpoint += "?" + qs
	}

	var matches []Match
	if err := c.get(ctx, endpoint, &matches); err != nil {
		log.Printf("[Client] Failed to fetch matches for status %s: %v", status, err)
		return nil, err
	}
	return matches, nil
}

// GetMatch fetches a single match
func (c *Client) GetMatch(ctx context.Context, id string) (*Match, error) {
	var match Match
	if err := c.get(ctx, "/api/v1/matches/"+url.PathEscape(id), &match); err != nil {
		log.Printf("[Client] Failed to fetch match %s: %v", id, err)
		return nil, err
	}
	return &match, nil
}

// get performs a GET and decodes the data field of the envelope into out
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("Network error: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &APIError{Message: "Request timeout - please try again"}
		}
		return &APIError{Message: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return &APIError{Status: resp.StatusCode, Message: "Request timeout - please try again"}
		}
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("Network error: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp, body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// errorMessage prefers the server's JSON message, then the raw body, then
// the status line.
func errorMessage(resp *http.Response, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return fallback
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return string(body)
	}
	return fallback
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
