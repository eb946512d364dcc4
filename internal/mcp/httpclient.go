package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/models"
	"github.com/claude/healthfuture/internal/mood"
)

// HTTPClient implements DataSource by calling the HealthFuture REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// dashboard session lives on the server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpclient: %s returned %d: %s", e.Path, e.Status, e.Body)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in any) ([]byte, http.Header, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(out))}
	}

	return out, resp.Header, nil
}

func (c *HTTPClient) call(ctx context.Context, method, path string, in, out any) error {
	body, _, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

// Login starts a session on the server. The remote dashboard routes
// reject requests until a login succeeds.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.User, error) {
	var u models.User
	err := c.call(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, &u)
	return u, err
}

func (c *HTTPClient) Profiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := c.call(ctx, http.MethodGet, "/api/v1/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *HTTPClient) CurrentProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := c.call(ctx, http.MethodGet, "/api/v1/profiles/current", nil, &p)
	return p, err
}

func (c *HTTPClient) SelectProfile(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodPut, "/api/v1/profiles/current", map[string]string{"id": id}, nil)
}

func (c *HTTPClient) Projection(ctx context.Context) (models.HealthData, error) {
	var data models.HealthData
	err := c.call(ctx, http.MethodGet, "/api/v1/projection", nil, &data)
	return data, err
}

func (c *HTTPClient) Chart(ctx context.Context, metric models.Metric) ([]dashboard.ChartPoint, error) {
	var points []dashboard.ChartPoint
	if err := c.call(ctx, http.MethodGet, "/api/v1/chart/"+url.PathEscape(string(metric)), nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *HTTPClient) UpdateSimulation(ctx context.Context, key string, value float64) (models.Simulation, error) {
	var sim models.Simulation
	err := c.call(ctx, http.MethodPut, "/api/v1/simulation/"+url.PathEscape(key),
		map[string]float64{"value": value}, &sim)
	return sim, err
}

func (c *HTTPClient) AnalyzeMood(ctx context.Context, text string) (mood.Result, error) {
	var res mood.Result
	err := c.call(ctx, http.MethodPost, "/api/v1/mood", map[string]string{"text": text}, &res)
	return res, err
}

func (c *HTTPClient) Suggestions(ctx context.Context) ([]string, error) {
	var s []string
	if err := c.call(ctx, http.MethodGet, "/api/v1/suggestions", nil, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *HTTPClient) Goals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := c.call(ctx, http.MethodGet, "/api/v1/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *HTTPClient) AddGoal(ctx context.Context, g models.NewGoal) (models.Goal, error) {
	var goal models.Goal
	err := c.call(ctx, http.MethodPost, "/api/v1/goals", g, &goal)
	return goal, err
}

// UpdateGoal reports false without error when the server does not know id.
func (c *HTTPClient) UpdateGoal(ctx context.Context, id string, current float64) (bool, error) {
	err := c.call(ctx, http.MethodPut, "/api/v1/goals/"+url.PathEscape(id),
		map[string]float64{"current": current}, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Report downloads the CSV export. The server stamps the generation date,
// so now is ignored.
func (c *HTTPClient) Report(ctx context.Context, _ time.Time) ([]byte, string, error) {
	body, header, err := c.do(ctx, http.MethodGet, "/api/v1/report", nil)
	if err != nil {
		return nil, "", err
	}
	var filename string
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return body, filename, nil
}
