// Package generation adapts hosted language models to the content.Generator port.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/contentforge/backend/internal/application/content"
	"github.com/contentforge/backend/internal/domain/campaign"
	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/infrastructure/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 2000
	temperature      = 0.7
)

// OpenAIGenerator asks a chat completion model for an email sequence.
// Outbound calls share one token bucket.
type OpenAIGenerator struct {
	client    *openai.Client
	limiter   *rate.Limiter
	model     string
	maxTokens int
	logger    *zap.Logger
}

var _ content.Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a generator from configuration
func NewOpenAIGenerator(cfg config.GenerationConfig, logger *zap.Logger) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	g := &OpenAIGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		limiter:   rate.NewLimiter(limit, burst),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
	if g.model == "" {
		g.model = defaultModel
	}
	if g.maxTokens <= 0 {
		g.maxTokens = defaultMaxTokens
	}
	return g, nil
}

// Generate implements content.Generator. Transport and API failures are
// returned as errors; a reply that cannot be parsed into emails is an
// unsuccessful response.
func (g *OpenAIGenerator) Generate(ctx context.Context, req content.GenerationRequest) (*content.GenerationResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, shared.NewExternalServiceError("generation rate limit wait aborted", err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			g.logger.Warn("Generation API error",
				zap.Int("status", apiErr.HTTPStatusCode),
				zap.String("type", apiErr.Type),
				zap.String("message", apiErr.Message))
		}
		return nil, shared.NewExternalServiceError("generation request failed", err)
	}

	out := &content.GenerationResponse{
		Model:          resp.Model,
		TokensConsumed: int64(resp.Usage.TotalTokens),
	}
	if len(resp.Choices) == 0 {
		out.Error = "generation returned no choices"
		return out, nil
	}

	items, err := parseEmails(resp.Choices[0].Message.Content)
	if err != nil {
		g.logger.Warn("Unparseable generation output", zap.String("model", resp.Model), zap.Error(err))
		out.Error = "generation output could not be parsed"
		return out, nil
	}
	if len(items) > req.ItemCount && req.ItemCount > 0 {
		items = items[:req.ItemCount]
	}

	out.Success = true
	out.Items = items
	g.logger.Debug("Generated email sequence",
		zap.String("model", resp.Model),
		zap.Int("items", len(items)),
		zap.Int("tokens", resp.Usage.TotalTokens))
	return out, nil
}

type emailEnvelope struct {
	Emails []campaign.GeneratedItem `json:"emails"`
}

// parseEmails reads {"emails":[{"subject","body","focus_topic"}]}, tolerating
// a surrounding markdown code fence. Entries without subject or body are dropped.
func parseEmails(raw string) ([]campaign.GeneratedItem, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, errors.New("empty completion")
	}

	var env emailEnvelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}

	items := make([]campaign.GeneratedItem, 0, len(env.Emails))
	for _, e := range env.Emails {
		e.Subject = strings.TrimSpace(e.Subject)
		e.Body = strings.TrimSpace(e.Body)
		if e.Subject == "" || e.Body == "" {
			continue
		}
		items = append(items, e)
	}
	if len(items) == 0 {
		return nil, errors.New("completion contained no usable emails")
	}
	return items, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
