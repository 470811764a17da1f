package factory

import (
	"fmt"

	"techstore-ai-be/pkg/llm"
	"techstore-ai-be/pkg/llm/groq"
)

func NewLLMProvider(providerType, apiURL, apiKey, defaultModel string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		if apiURL == "" {
			apiURL = "https://api.groq.com/openai/v1/chat/completions" // Default
		}
		return groq.NewGroqProvider(apiURL, apiKey, defaultModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
