// Package imagegen is the HTTP adapter for the external image synthesis
// service. The service is an opaque collaborator: it receives a text prompt
// and answers with an image handle that is stored verbatim.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Client calls the image synthesis service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageHandle string `json:"image_handle"`
	Error       string `json:"error,omitempty"`
}

// Generate synthesizes an image for prompt and returns its handle.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("imagegen request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("imagegen request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagegen call: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("imagegen read response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("imagegen decode: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = res.Status
		}
		return "", fmt.Errorf("imagegen: %s", msg)
	}
	if out.ImageHandle == "" {
		return "", fmt.Errorf("imagegen: empty image handle")
	}

	return out.ImageHandle, nil
}
