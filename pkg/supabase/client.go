package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// Client represents a Supabase PostgREST client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// Error is a non-2xx response from PostgREST
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Query executes a query on a Supabase table
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodGet, table, query, nil, "")
}

// Insert inserts a record into a Supabase table
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, table, nil, data, "return=representation")
}

// Update updates a record in a Supabase table
func (c *Client) Update(ctx context.Context, table string, id string, data interface{}) ([]byte, error) {
	query := map[string]interface{}{"id": "eq." + id}
	return c.do(ctx, http.MethodPatch, table, query, data, "return=representation")
}

// Upsert inserts or updates a record in a Supabase table
// onConflict specifies the columns to detect conflicts (e.g., "date")
func (c *Client) Upsert(ctx context.Context, table string, data interface{}, onConflict string) ([]byte, error) {
	query := map[string]interface{}{"on_conflict": onConflict}
	// resolution=merge-duplicates will update existing rows
	return c.do(ctx, http.MethodPost, table, query, data, "return=representation,resolution=merge-duplicates")
}

// Delete deletes a record from a Supabase table
func (c *Client) Delete(ctx context.Context, table string, id string) error {
	return c.DeleteWhere(ctx, table, map[string]interface{}{"id": "eq." + id})
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(ctx context.Context, table string, query map[string]interface{}) error {
	_, err := c.do(ctx, http.MethodDelete, table, query, nil, "")
	return err
}

func (c *Client) do(ctx context.Context, method, table string, query map[string]interface{}, data interface{}, prefer string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	var reader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		req.URL.RawQuery = encodeQuery(query)
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// encodeQuery builds a stable query string. PostgREST filters such as
// and=(...) may repeat a column, so []string values add one parameter each.
func encodeQuery(query map[string]interface{}) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	q := url.Values{}
	for _, key := range keys {
		switch v := query[key].(type) {
		case []string:
			for _, s := range v {
				q.Add(key, s)
			}
		default:
			q.Add(key, fmt.Sprintf("%v", v))
		}
	}
	return q.Encode()
}
