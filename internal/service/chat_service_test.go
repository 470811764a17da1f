package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/memory"
	"techstore-ai-be/internal/repository/specification"
	"techstore-ai-be/pkg/chat/facts"
	"techstore-ai-be/pkg/chat/history"
	"techstore-ai-be/pkg/intent"
	"techstore-ai-be/pkg/llm"

	"github.com/google/uuid"
)

type stubProvider struct {
	response  string
	chatCalls int
	lastChat  []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, msgs []llm.Message, options ...llm.Option) (string, error) {
	s.chatCalls++
	s.lastChat = msgs
	return s.response, nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "general", nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProductRepo struct{}

func (stubProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (stubProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	return nil, nil
}
func (stubProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return nil, nil
}
func (stubProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 4, nil
}
func (stubProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	return nil, nil
}
func (stubProductRepo) CountPerCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	return nil, nil
}

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (stubUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}
func (stubUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (stubUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 12, nil
}

type stubSaleRepo struct{}

func (stubSaleRepo) Create(ctx context.Context, sale *entity.Sale) error { return nil }
func (stubSaleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sale, error) {
	return nil, nil
}
func (stubSaleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 7, nil
}

func newTestChatService(provider llm.LLMProvider) (IChatService, *memory.SessionStore) {
	log := nopLogger{}
	classifier := intent.NewClassifier(provider, log)
	resolver := facts.NewResolver(stubProductRepo{}, stubUserRepo{}, stubSaleRepo{})
	summarizer := history.NewSummarizer(provider, log)
	sessions := memory.NewSessionStore()

	svc := NewChatService(provider, "llama-3.3-70b-versatile", classifier, resolver, summarizer, sessions, log)
	return svc, sessions
}

func TestChatRejectsUnknownModel(t *testing.T) {
	svc, _ := newTestChatService(&stubProvider{response: "hola"})

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "hola",
		Model:   "bogus-model",
	})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "llama-3.3-70b-versatile") {
		t.Errorf("error should list available models, got: %v", err)
	}
}

func TestChatPersistsSessionHistory(t *testing.T) {
	svc, sessions := newTestChatService(&stubProvider{response: "respuesta"})

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "hola",
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Response != "respuesta" {
		t.Errorf("Response = %q", res.Response)
	}
	if got := len(sessions.History("sess-1")); got != 2 {
		t.Errorf("session history length = %d, want 2", got)
	}
}

func TestChatWithoutSessionLeavesNoTrace(t *testing.T) {
	svc, sessions := newTestChatService(&stubProvider{response: "respuesta"})

	if _, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hola"}); err != nil {
		t.Fatal(err)
	}
	if ids := sessions.ActiveSessionIDs(); len(ids) != 0 {
		t.Errorf("sessions created without a session id: %v", ids)
	}
}

func TestChatDatabaseIntentInjectsFact(t *testing.T) {
	provider := &stubProvider{response: "Hay 4 laptops."}
	svc, _ := newTestChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "¿Cuántos laptops hay en stock?",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != "database" || !res.UsedDatabase {
		t.Errorf("Intent = %q, UsedDatabase = %v; want database intent", res.Intent, res.UsedDatabase)
	}
	system := provider.lastChat[0].Content
	if !strings.Contains(system, "Hay 4 laptops disponibles en nuestra tienda.") {
		t.Error("database fact missing from system prompt")
	}
}

func TestChatKnowledgeIntentSkipsDatabase(t *testing.T) {
	provider := &stubProvider{response: "La Switch salió en 2017."}
	svc, _ := newTestChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "¿Cuándo salió la Nintendo Switch?",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != "knowledge" || res.UsedDatabase {
		t.Errorf("Intent = %q, UsedDatabase = %v; want knowledge intent without database", res.Intent, res.UsedDatabase)
	}
	if strings.Contains(provider.lastChat[0].Content, "INFORMACIÓN DE LA BASE DE DATOS:") {
		t.Error("database block must not appear for knowledge intent")
	}
}

func TestChatRequiresMessage(t *testing.T) {
	svc, _ := newTestChatService(&stubProvider{})

	if _, err := svc.Chat(context.Background(), &dto.ChatRequest{}); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestChatUsesCallerSuppliedHistory(t *testing.T) {
	provider := &stubProvider{response: "claro"}
	svc, _ := newTestChatService(provider)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "gracias",
		History: []dto.SessionTurn{
			{Role: "user", Content: "hola"},
			{Role: "assistant", Content: "buenos días"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasContext {
		t.Error("HasContext = false, want true with supplied history")
	}
	// system + two supplied turns + user message
	if len(provider.lastChat) != 4 {
		t.Fatalf("got %d messages, want 4", len(provider.lastChat))
	}
	if provider.lastChat[1].Content != "hola" || provider.lastChat[2].Content != "buenos días" {
		t.Errorf("supplied history missing from dispatch: %+v", provider.lastChat[1:3])
	}
}

func TestChatStoredSessionWinsOverSuppliedHistory(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc, sessions := newTestChatService(provider)
	sessions.AppendExchange("s1", "primera", "respuesta primera", time.Now())

	if _, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "segunda",
		SessionID: "s1",
		History:   []dto.SessionTurn{{Role: "user", Content: "ajena"}},
	}); err != nil {
		t.Fatal(err)
	}

	for _, msg := range provider.lastChat {
		if msg.Content == "ajena" {
			t.Error("caller history used despite stored session state")
		}
	}
	if provider.lastChat[1].Content != "primera" {
		t.Errorf("stored history missing, got %+v", provider.lastChat[1])
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, _ := newTestChatService(&stubProvider{response: "respuesta"})

	created := svc.CreateSession()
	if created.SessionID == "" {
		t.Fatal("CreateSession returned empty id")
	}

	if _, err := svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "hola",
		SessionID: created.SessionID,
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.GetSessionStats(created.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMessages != 2 {
		t.Errorf("TotalMessages = %d, want 2", stats.TotalMessages)
	}

	hist := svc.GetSessionHistory(created.SessionID)
	if hist.Total != 2 {
		t.Fatalf("history Total = %d, want 2", hist.Total)
	}
	if hist.History[0].Role != "user" || hist.History[0].Content != "hola" {
		t.Errorf("unexpected first turn: %+v", hist.History[0])
	}
	if hist.History[1].Role != "assistant" || hist.History[1].Content != "respuesta" {
		t.Errorf("unexpected second turn: %+v", hist.History[1])
	}

	listed := svc.ListSessions()
	if listed.Total != 1 || listed.Sessions[0] != created.SessionID {
		t.Errorf("ListSessions = %+v, want single session %s", listed, created.SessionID)
	}

	if !svc.ClearSession(created.SessionID) {
		t.Error("ClearSession returned false for existing session")
	}
	if svc.ClearSession(created.SessionID) {
		t.Error("ClearSession returned true for already-cleared session")
	}

	empty := svc.GetSessionHistory(created.SessionID)
	if empty.Total != 0 || len(empty.History) != 0 {
		t.Errorf("cleared session history = %+v, want empty", empty)
	}
}
