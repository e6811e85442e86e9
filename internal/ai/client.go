package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/foliohq/folio/internal/config"
)

// Client requests a completion from the language-model provider.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Module provides the AI client to the Fx graph.
var Module = fx.Provide(NewClient)

// ErrNotConfigured indicates the provider API key is missing.
var ErrNotConfigured = errors.New("ai provider is not configured")

// NewClient builds the Gemini-backed client. A missing API key still yields a
// client; calls fail with ErrNotConfigured so the proposal service can apply
// its fallback.
func NewClient(cfg config.Config, logger *zap.Logger) Client {
	if cfg.AI.APIKey == "" && logger != nil {
		logger.Warn("ai provider key missing; proposal generation will use fallback text")
	}
	return &geminiClient{
		cfg:  cfg.AI,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiClient struct {
	cfg  config.AI
	http *http.Client
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
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("provider returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
