package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
)

// APIClient sends authenticated JSON requests to the backend API
type APIClient struct {
	baseURL    string
	httpClient domain.HTTPClient
	tokens     domain.TokenProvider
	logger     logger.Logger
}

// NewAPIClient creates a client for the API rooted at baseURL
func NewAPIClient(baseURL string, httpClient domain.HTTPClient, tokens domain.TokenProvider, logger logger.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// getJSON sends a GET request and decodes the JSON response into out
func (c *APIClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeJSON(body, out)
}

// sendJSON sends payload as JSON and decodes the JSON response into out
func (c *APIClient) sendJSON(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	body, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	return decodeJSON(body, out)
}

// sendText sends payload as JSON and returns the plain text response
func (c *APIClient) sendText(ctx context.Context, method, path string, query url.Values, payload interface{}) (string, error) {
	body, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func decodeJSON(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.WithFields(map[string]interface{}{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to execute request: %v", err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		backendErr := &domain.BackendError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
		if gjson.ValidBytes(body) {
			backendErr.Message = gjson.GetBytes(body, "message").String()
		}
		log.WithField("status", resp.StatusCode).Error(fmt.Sprintf("Backend returned non-OK status: %s", string(body)))
		return nil, backendErr
	}

	log.WithField("status", resp.StatusCode).Debug("Backend request completed")
	return body, nil
}
