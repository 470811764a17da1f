package history

import (
	"context"
	"fmt"
	"strings"

	"techstore-ai-be/internal/pkg/logger"
	"techstore-ai-be/pkg/llm"
	"techstore-ai-be/pkg/store"
)

const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 150
)

type Summarizer struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewSummarizer(provider llm.LLMProvider, logger logger.ILogger) *Summarizer {
	return &Summarizer{
		provider: provider,
		logger:   logger,
	}
}

// Summarize condenses overflow turns into a short Spanish summary. A failed
// model call degrades to an empty summary, never an error.
func (s *Summarizer) Summarize(ctx context.Context, overflow []store.Turn) string {
	if len(overflow) == 0 {
		return ""
	}

	lines := make([]string, len(overflow))
	for i, turn := range overflow {
		speaker := "Asistente"
		if turn.Role == store.RoleUser {
			speaker = "Usuario"
		}
		lines[i] = fmt.Sprintf("%s: %s", speaker, turn.Content)
	}

	prompt := fmt.Sprintf(`Resume brevemente esta conversación anterior manteniendo solo la información relevante para el contexto futuro. Máximo 100 palabras. Usa formato Markdown si es necesario.

Conversación:
%s

Resumen:`, strings.Join(lines, "\n"))

	summary, err := s.provider.Generate(ctx, prompt,
		llm.WithModel(llm.ClassifierModel),
		llm.WithTemperature(summaryTemperature),
		llm.WithMaxTokens(summaryMaxTokens),
	)
	if err != nil {
		s.logger.Warn("History", "Summarization failed, continuing without summary", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return strings.TrimSpace(summary)
}
