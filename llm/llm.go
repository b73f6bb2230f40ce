package llm

import (
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

type compatibleProvider struct {
	baseURL string
	model   string
}

// OpenAI-compatible providers with their base URLs and default models
var openAICompatibleProviders = map[string]compatibleProvider{
	"mistral":    {"https://api.mistral.ai/v1", "mistral-small-latest"},
	"groq":       {"https://api.groq.com/openai/v1", "llama-3.1-8b-instant"},
	"together":   {"https://api.together.xyz/v1", "meta-llama/Llama-3.3-70B-Instruct-Turbo"},
	"deepseek":   {"https://api.deepseek.com/v1", "deepseek-chat"},
	"fireworks":  {"https://api.fireworks.ai/inference/v1", "accounts/fireworks/models/llama-v3p1-8b-instruct"},
	"perplexity": {"https://api.perplexity.ai", "sonar"},
}

func New(cfg Config) (LLM, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	switch cfg.Provider {
	case "claude":
		return newClaude(cfg.APIKey, cfg.BaseURL, cfg.Model, httpClient), nil
	case "openai":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}

		model := cfg.Model
		if model == "" {
			model = "gpt-4"
		}

		return newOpenAICompatible(cfg.APIKey, baseURL, model, httpClient), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}

		model := cfg.Model
		if model == "" {
			model = "qwen2:0.5b"
		}

		// Ollama's OpenAI-compatible endpoint
		return newOpenAICompatible("ollama", baseURL+"/v1", model, httpClient), nil
	default:
		if p, ok := openAICompatibleProviders[cfg.Provider]; ok {
			baseURL := p.baseURL
			if cfg.BaseURL != "" {
				baseURL = cfg.BaseURL
			}
			model := cfg.Model
			if model == "" {
				model = p.model
			}
			return newOpenAICompatible(cfg.APIKey, baseURL, model, httpClient), nil
		}
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// IsKnownProvider checks if a provider is recognized
func IsKnownProvider(provider string) bool {
	switch provider {
	case "claude", "openai", "ollama":
		return true
	default:
		_, ok := openAICompatibleProviders[provider]
		return ok
	}
}
