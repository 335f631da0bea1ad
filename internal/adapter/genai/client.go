// Package genai is an HTTP client for a completions-style text model,
// used to moderate and generate ad copy.
package genai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	moderationPrompt = "You are the moderator of an advertising platform. " +
		"Detect profanity and prohibited topics in ad texts (illegal " +
		"activity, discrimination, fraud, extremism, violence and similar). " +
		"If the text fails moderation, return the reason. If the text " +
		"passes, return exactly 'APPROVED'. Never return anything else."

	generationPrompt = "You are a professional marketer experienced in " +
		"writing high-converting ads. Study the target audience and write " +
		"ad copy addressed to it, with an attention-grabbing headline and " +
		"a persuasive call to the target action. Do not use markdown " +
		"formatting or line breaks."

	approvedSentinel = "APPROVED"

	moderationTemperature = 0.1
	generationTemperature = 0.3
)

// Client talks to a chat-completions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// New creates a client for the given endpoint. baseURL is the API root
// without the /chat/completions suffix.
func New(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, systemText, userText string, temperature float64) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []message{
			{Role: "system", Content: systemText},
			{Role: "user", Content: userText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("completion API status %d: %s", resp.StatusCode, payload)
	}

	var out completionResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Moderate asks the model whether the ad text passes content policy. Any
// answer other than the approval sentinel is treated as a rejection with
// the answer as the reason.
func (c *Client) Moderate(ctx context.Context, adText string) (bool, string, error) {
	answer, err := c.complete(ctx, moderationPrompt, adText, moderationTemperature)
	if err != nil {
		return false, "", err
	}
	if answer == approvedSentinel {
		return true, "", nil
	}
	return false, answer, nil
}

// Generate produces ad copy from a product, target action and audience.
func (c *Client) Generate(ctx context.Context, productName, targetAction, targetAudience string) (string, error) {
	prompt := fmt.Sprintf("Product/service: %s. Target action: %s. Target audience: %s.",
		productName, targetAction, targetAudience)
	return c.complete(ctx, generationPrompt, prompt, generationTemperature)
}
