package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
)

// Client is a thin Vapi.ai REST client. Calls are not retried; a non-2xx
// response surfaces as an EXT_001 error carrying the raw body.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Vapi client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Assistant is the subset of the assistant resource the portal reads back.
type Assistant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FirstMessage string `json:"firstMessage"`
}

// PhoneNumber is the subset of the phone-number resource the portal reads.
type PhoneNumber struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return common.NewError(common.ErrCodeValidationFormat, "Failed to encode request body", common.StatusInternalServerError, err.Error())
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return common.NewError(common.ErrCodeExternalService, "Failed to build upstream request", common.StatusInternalServerError, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.NewError(common.ErrCodeExternalService, "Voice service is unreachable", common.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return common.NewError(
			common.ErrCodeExternalService,
			fmt.Sprintf("Voice service returned %d", resp.StatusCode),
			common.StatusBadGateway,
			string(raw),
		)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return common.NewError(common.ErrCodeExternalService, "Failed to decode upstream response", common.StatusBadGateway, err.Error())
		}
	}
	return nil
}

// CreateAssistant creates an assistant and returns its resource.
func (c *Client) CreateAssistant(ctx context.Context, payload map[string]interface{}) (*Assistant, error) {
	var assistant Assistant
	if err := c.do(ctx, http.MethodPost, "/assistant", payload, &assistant); err != nil {
		return nil, err
	}
	return &assistant, nil
}

// UpdateAssistant patches an existing assistant.
func (c *Client) UpdateAssistant(ctx context.Context, id string, payload map[string]interface{}) (*Assistant, error) {
	var assistant Assistant
	if err := c.do(ctx, http.MethodPatch, "/assistant/"+id, payload, &assistant); err != nil {
		return nil, err
	}
	return &assistant, nil
}

// GetAssistant fetches an assistant.
func (c *Client) GetAssistant(ctx context.Context, id string) (*Assistant, error) {
	var assistant Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant/"+id, nil, &assistant); err != nil {
		return nil, err
	}
	return &assistant, nil
}

// AvailablePhoneNumbers lists numbers available for purchase.
func (c *Client) AvailablePhoneNumbers(ctx context.Context) ([]PhoneNumber, error) {
	var numbers []PhoneNumber
	if err := c.do(ctx, http.MethodGet, "/phone-number/available", nil, &numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}

// BuyPhoneNumber purchases a number and binds it to the assistant.
func (c *Client) BuyPhoneNumber(ctx context.Context, assistantID string) (*PhoneNumber, error) {
	var number PhoneNumber
	payload := map[string]interface{}{"assistantId": assistantID}
	if err := c.do(ctx, http.MethodPost, "/phone-number/buy", payload, &number); err != nil {
		return nil, err
	}
	return &number, nil
}
