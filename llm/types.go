package llm

import (
	"context"
	"time"
)

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

type Message struct {
	Role    string
	Content string
}

// LLM sends one chat turn and returns the text of the reply
type LLM interface {
	Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}
