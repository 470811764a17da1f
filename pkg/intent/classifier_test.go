package intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"techstore-ai-be/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestClassifyLocalDecision(t *testing.T) {
	provider := &fakeProvider{}
	c := NewClassifier(provider, nopLogger{})

	got := c.Classify(context.Background(), "¿Cuántos laptops hay en stock?")
	if got != IntentDatabase {
		t.Errorf("Classify = %q, want %q", got, IntentDatabase)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for conclusive message, want 0", provider.calls)
	}
}

func TestClassifyCacheExpiry(t *testing.T) {
	provider := &fakeProvider{response: "knowledge"}
	c := NewClassifierWithTTL(provider, nopLogger{}, 20*time.Millisecond)

	msg := "háblame de tecnología retro"
	c.Classify(context.Background(), msg)
	c.Classify(context.Background(), msg)
	if provider.calls != 1 {
		t.Fatalf("provider called %d times within TTL, want 1", provider.calls)
	}

	time.Sleep(40 * time.Millisecond)
	c.Classify(context.Background(), msg)
	if provider.calls != 2 {
		t.Errorf("provider called %d times after TTL expiry, want 2", provider.calls)
	}
}

func TestClassifyEscalatesToLLM(t *testing.T) {
	provider := &fakeProvider{response: "knowledge"}
	c := NewClassifier(provider, nopLogger{})

	got := c.Classify(context.Background(), "háblame de tecnología retro")
	if got != IntentKnowledge {
		t.Errorf("Classify = %q, want %q", got, IntentKnowledge)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestClassifyCachesResult(t *testing.T) {
	provider := &fakeProvider{response: "general"}
	c := NewClassifier(provider, nopLogger{})

	first := c.Classify(context.Background(), "hola")
	second := c.Classify(context.Background(), "  HOLA  ")

	if first != second {
		t.Errorf("cached result %q differs from first %q", second, first)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second lookup must hit the cache)", provider.calls)
	}
}

func TestClassifyFallbackOnLLMError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("api unavailable")}
	c := NewClassifier(provider, nopLogger{})

	// Scores are tied at zero, so the fallback prefers database.
	got := c.Classify(context.Background(), "hola")
	if got != IntentDatabase {
		t.Errorf("Classify = %q, want %q on LLM failure with tied scores", got, IntentDatabase)
	}
}

func TestClassifyParsesNoisyLLMResponse(t *testing.T) {
	provider := &fakeProvider{response: `La categoría es "database".`}
	c := NewClassifier(provider, nopLogger{})

	got := c.Classify(context.Background(), "hola")
	if got != IntentDatabase {
		t.Errorf("Classify = %q, want %q", got, IntentDatabase)
	}
}
