package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateAccount registers a new user via POST /account.
func (c *Client) CreateAccount(ctx context.Context, userID, email, password, name string) (*User, error) {
	reqURL := fmt.Sprintf("%s/account", c.endpoint)

	body, err := json.Marshal(map[string]string{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create account request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create account request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite account API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError("create account", resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite account response: %w", err)
	}
	return &user, nil
}

// CreateEmailSession logs a user in via POST /account/sessions/email.
// The returned session secret authenticates subsequent user-scoped calls.
func (c *Client) CreateEmailSession(ctx context.Context, email, password string) (*Session, error) {
	reqURL := fmt.Sprintf("%s/account/sessions/email", c.endpoint)

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create session request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite session API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError("create session", resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite session response: %w", err)
	}
	return &session, nil
}

// GetAccount fetches the user bound to a session secret via GET /account.
func (c *Client) GetAccount(ctx context.Context, sessionSecret string) (*User, error) {
	reqURL := fmt.Sprintf("%s/account", c.endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get account request: %w", err)
	}
	c.setSessionHeaders(httpReq, sessionSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call appwrite account API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("get account", resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode appwrite account response: %w", err)
	}
	return &user, nil
}

// DeleteCurrentSession logs a user out via DELETE /account/sessions/current.
func (c *Client) DeleteCurrentSession(ctx context.Context, sessionSecret string) error {
	reqURL := fmt.Sprintf("%s/account/sessions/current", c.endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete session request: %w", err)
	}
	c.setSessionHeaders(httpReq, sessionSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call appwrite session API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError("delete session", resp)
	}
	return nil
}

// setSessionHeaders authenticates a request as the session's user
// instead of the server key.
func (c *Client) setSessionHeaders(req *http.Request, sessionSecret string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Session", sessionSecret)
}
