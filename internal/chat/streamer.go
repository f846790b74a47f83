// Package chat relays conversations with the coaching assistant. Replies are
// streamed from an OpenAI-compatible model and forwarded as Server-Sent Events.
package chat

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/akyairhashvil/momentum/internal/models"
)

const (
	DefaultModel = "gpt-4o-mini"

	SystemPrompt = "You are Momentum's productivity coach. Help the user plan sprints, " +
		"break goals into concrete tasks, and reflect honestly in retrospectives. " +
		"Keep answers short and actionable."
)

// Streamer produces an assistant reply for history, calling onChunk for each
// piece of text as it arrives.
type Streamer interface {
	Stream(ctx context.Context, history []models.Message, onChunk func(chunk string) error) error
}

// Config selects the model endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LLMStreamer is a Streamer backed by a langchaingo model.
type LLMStreamer struct {
	llm llms.Model
}

// NewOpenAIStreamer builds a streamer for an OpenAI-compatible endpoint.
func NewOpenAIStreamer(cfg Config) (*LLMStreamer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key required")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &LLMStreamer{llm: llm}, nil
}

// NewLLMStreamer wraps an existing model.
func NewLLMStreamer(llm llms.Model) *LLMStreamer {
	return &LLMStreamer{llm: llm}
}

func (s *LLMStreamer) Stream(ctx context.Context, history []models.Message, onChunk func(string) error) error {
	_, err := s.llm.GenerateContent(ctx, buildPrompt(history),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if len(chunk) == 0 {
				return nil
			}
			return onChunk(string(chunk))
		}))
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}
	return nil
}

// buildPrompt prepends the coach prompt to the whole conversation.
func buildPrompt(history []models.Message) []llms.MessageContent {
	msgs := make([]llms.MessageContent, 0, len(history)+1)
	msgs = append(msgs, textMessage(llms.ChatMessageTypeSystem, SystemPrompt))
	for _, m := range history {
		switch m.Role {
		case models.RoleAssistant:
			msgs = append(msgs, textMessage(llms.ChatMessageTypeAI, m.Content))
		case models.RoleSystem:
			msgs = append(msgs, textMessage(llms.ChatMessageTypeSystem, m.Content))
		default:
			msgs = append(msgs, textMessage(llms.ChatMessageTypeHuman, m.Content))
		}
	}
	return msgs
}

func textMessage(role llms.ChatMessageType, text string) llms.MessageContent {
	return llms.MessageContent{Role: role, Parts: []llms.ContentPart{llms.TextContent{Text: text}}}
}
