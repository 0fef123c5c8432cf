package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the Appwrite REST API.
// It authenticates with a server API key and scopes all row operations
// to a single database and table.
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	databaseID string
	tableID    string
	httpClient *http.Client
}

// NewClient creates a new Appwrite HTTP client.
func NewClient(endpoint, projectID, apiKey, databaseID, tableID string) *Client {
	return &Client{
		endpoint:   endpoint,
		projectID:  projectID,
		apiKey:     apiKey,
		databaseID: databaseID,
		tableID:    tableID,
		httpClient: &http.Client{},
	}
}

// ListRows lists rows via GET /tablesdb/{db}/tables/{table}/rows.
// Appwrite queries are JSON-encoded objects passed as queries[] params.
func (c *Client) ListRows(ctx context.Context, limit, offset int) ([]TaskRow, error) {
	q := url.Values{}
	q.Add("queries[]", fmt.Sprintf(`{"method":"limit","values":[%d]}`, limit))
	q.Add("queries[]", fmt.Sprintf(`{"method":"offset","values":[%d]}`, offset))

	reqURL := fmt.Sprintf("%s/tablesdb/%s/tables/%s/rows?%s", c.endpoint, c.databaseID, c.tableID, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list rows request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("list", resp)
	}

	var listResp struct {
		Total int       `json:"total"`
		Rows  []TaskRow `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite list response: %w", err)
	}
	return listResp.Rows, nil
}

// CreateRow creates a row via POST /tablesdb/{db}/tables/{table}/rows.
// The row ID is client-generated; Appwrite rejects duplicates.
func (c *Client) CreateRow(ctx context.Context, rowID string, data TaskData) (*TaskRow, error) {
	reqURL := fmt.Sprintf("%s/tablesdb/%s/tables/%s/rows", c.endpoint, c.databaseID, c.tableID)

	body, err := json.Marshal(createRowRequest{RowID: rowID, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create row request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create row request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError("create", resp)
	}

	var row TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite create response: %w", err)
	}
	return &row, nil
}

// UpdateRow patches row fields via PATCH /tablesdb/{db}/tables/{table}/rows/{id}.
// Only the keys present in data are updated.
func (c *Client) UpdateRow(ctx context.Context, rowID string, data map[string]any) (*TaskRow, error) {
	reqURL := fmt.Sprintf("%s/tablesdb/%s/tables/%s/rows/%s", c.endpoint, c.databaseID, c.tableID, rowID)

	body, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update row request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build update row request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("update", resp)
	}

	var row TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite update response: %w", err)
	}
	return &row, nil
}

// DeleteRow deletes a row via DELETE /tablesdb/{db}/tables/{table}/rows/{id}.
func (c *Client) DeleteRow(ctx context.Context, rowID string) error {
	reqURL := fmt.Sprintf("%s/tablesdb/%s/tables/%s/rows/%s", c.endpoint, c.databaseID, c.tableID, rowID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete row request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call appwrite delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError("delete", resp)
	}
	return nil
}

// apiError drains the response body into a typed error so callers can
// branch on the status code.
func apiError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Operation: op, Body: string(raw)}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Key", c.apiKey)
}
