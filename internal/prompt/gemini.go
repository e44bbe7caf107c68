package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// geminiAPIBaseURL is a var to allow test overrides via httptest.
var geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAPIBaseURL returns the current Gemini API base URL.
func GeminiAPIBaseURL() string { return geminiAPIBaseURL }

// SetGeminiAPIBaseURL overrides the Gemini API base URL.
// Intended for use in tests only.
func SetGeminiAPIBaseURL(u string) { geminiAPIBaseURL = u }

// sharedHTTPClient is used by all generator calls; the timeout bounds how
// long a slow AI backend can hold up a prompt refresh.
var sharedHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// GeminiClient calls the Google Generative Language API.
type GeminiClient struct {
	model  string
	apiKey string // unexported; never serialized by encoding/json
}

// NewGeminiClient returns a client for the given model and API key.
func NewGeminiClient(model, apiKey string) *GeminiClient {
	return &GeminiClient{model: model, apiKey: apiKey}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateText submits the instruction and returns the first candidate's text.
func (c *GeminiClient) GenerateText(ctx context.Context, instruction string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: API key not configured")
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: instruction}}},
		},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIBaseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := sharedHTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodyBytes = 1 * 1024 * 1024 // 1 MiB
	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBytes, &gemResp); err != nil {
		return "", fmt.Errorf("parsing response JSON (HTTP %d): %w", resp.StatusCode, err)
	}

	// Check status code first, then structured error field.
	if resp.StatusCode != http.StatusOK {
		if gemResp.Error != nil {
			return "", fmt.Errorf("gemini: %s: %s", gemResp.Error.Status, gemResp.Error.Message)
		}
		return "", fmt.Errorf("gemini: HTTP %d", resp.StatusCode)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty candidates in response")
	}

	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}
