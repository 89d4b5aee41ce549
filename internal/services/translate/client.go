package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no upstream translator is set
var ErrNotConfigured = errors.New("translation service not configured")

// Config holds translation client settings
type Config struct {
	// BaseURL is the upstream translation endpoint. Empty disables
	// translation; Translate then fails with ErrNotConfigured.
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns default translation client configuration
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// Client calls the external translation service. Results decorate
// displayed chat messages only; nothing here is ever persisted.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new translation client
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

// Translate sends the text upstream and returns the translation.
// Upstream failures propagate as errors; they never affect core state.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}
	if text == "" || targetLanguage == "" {
		return "", errors.New("text and target language are required")
	}

	body, err := json.Marshal(translateRequest{
		Text:           text,
		TargetLanguage: targetLanguage,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}

	var parsed translateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("translation service: %s", parsed.Error)
		}
		return "", fmt.Errorf("translation service: HTTP %d", resp.StatusCode)
	}

	if parsed.TranslatedText == "" {
		return "", errors.New("translation service returned no text")
	}

	return parsed.TranslatedText, nil
}
