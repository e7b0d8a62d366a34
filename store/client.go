// Package store is the gateway to the hosted Postgres REST API (Supabase
// PostgREST). It holds no state of its own: every operation is a single
// synchronous HTTP call whose filters, ordering and join expansion are
// encoded in the query string.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/mlanzi/spese-backend/errors"
	"github.com/mlanzi/spese-backend/logger"
	"go.uber.org/zap"
)

// Client talks to the PostgREST endpoint of the hosted store.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a store client. The timeout bounds every request; the
// external service may otherwise hang indefinitely.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.GetLogger(),
	}
}

func (c *Client) newRequest(ctx context.Context, method, table, rawQuery string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if rawQuery != "" {
		url += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes the request and decodes a JSON body into dest (when non-nil).
// Non-2xx responses surface as upstream errors with the response body
// embedded, except single-object misses which map to not-found.
func (c *Client) do(req *http.Request, dest interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Upstream("store", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		// PostgREST answers 406 when a single-object request matches no rows.
		if resp.StatusCode == http.StatusNotAcceptable || resp.StatusCode == http.StatusNotFound {
			return apperrors.New(apperrors.NotFoundError, "record not found", string(body))
		}
		c.logger.Errorw("Store returned non-2xx status",
			"status", resp.StatusCode,
			"method", req.Method,
			"url", req.URL.Path,
		)
		return apperrors.UpstreamStatus("store", resp.StatusCode, string(body))
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperrors.Upstream("store", fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// Get runs a filtered select described by q and decodes the result into dest.
func (c *Client) Get(ctx context.Context, q Query, dest interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, q.Table, q.Encode(), nil)
	if err != nil {
		return err
	}
	if q.Single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	return c.do(req, dest)
}

// Insert posts a new row and decodes the created representation into dest
// (a pointer to a slice; PostgREST returns an array).
func (c *Client) Insert(ctx context.Context, table string, payload interface{}, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, table, "", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(req, dest)
}

// Update patches the row with the given id using only the fields present in
// payload and decodes the updated representation into dest.
func (c *Client) Update(ctx context.Context, table string, id int64, payload interface{}, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	q := NewQuery(table).Eq("id", fmt.Sprintf("%d", id))
	req, err := c.newRequest(ctx, http.MethodPatch, table, q.Encode(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(req, dest)
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, table string, id int64) error {
	q := NewQuery(table).Eq("id", fmt.Sprintf("%d", id))
	req, err := c.newRequest(ctx, http.MethodDelete, table, q.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Ping checks store reachability for health reporting. PostgREST answers the
// bare rest root with its OpenAPI document.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("store returned status %d", resp.StatusCode)
	}
	return nil
}
