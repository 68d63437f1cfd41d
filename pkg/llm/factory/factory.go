package factory

import (
	"fmt"
	"time"

	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm/gemini"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm/ollama"
)

// New selects an LLM backend by name.
func New(providerType, model, baseURL, apiKey string, timeout time.Duration) (llm.Provider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.New(baseURL, model, timeout), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.New(apiKey, model, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
