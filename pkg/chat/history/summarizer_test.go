package history

import (
	"context"
	"errors"
	"strings"
	"testing"

	"techstore-ai-be/pkg/llm"
	"techstore-ai-be/pkg/store"
)

type fakeProvider struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestSummarizeEmptyOverflow(t *testing.T) {
	s := NewSummarizer(&fakeProvider{response: "should not be called"}, nopLogger{})

	if got := s.Summarize(context.Background(), nil); got != "" {
		t.Errorf("Summarize(empty) = %q, want empty string", got)
	}
}

func TestSummarizeLabelsSpeakers(t *testing.T) {
	provider := &fakeProvider{response: "  Resumen de la conversación.  "}
	s := NewSummarizer(provider, nopLogger{})

	got := s.Summarize(context.Background(), []store.Turn{
		{Role: store.RoleUser, Content: "¿Qué es un SSD?"},
		{Role: store.RoleAssistant, Content: "Un SSD es un disco de estado sólido."},
	})

	if got != "Resumen de la conversación." {
		t.Errorf("Summarize = %q, want trimmed summary", got)
	}
	if !strings.Contains(provider.lastPrompt, "Usuario: ¿Qué es un SSD?") {
		t.Errorf("prompt missing user line:\n%s", provider.lastPrompt)
	}
	if !strings.Contains(provider.lastPrompt, "Asistente: Un SSD es un disco de estado sólido.") {
		t.Errorf("prompt missing assistant line:\n%s", provider.lastPrompt)
	}
}

func TestSummarizeDegradesOnError(t *testing.T) {
	s := NewSummarizer(&fakeProvider{err: errors.New("api down")}, nopLogger{})

	got := s.Summarize(context.Background(), []store.Turn{
		{Role: store.RoleUser, Content: "hola"},
	})

	if got != "" {
		t.Errorf("Summarize on provider error = %q, want empty string", got)
	}
}
