package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techstore-ai-be/internal/dto"
	"techstore-ai-be/internal/pkg/logger"
	"techstore-ai-be/internal/repository/memory"
	"techstore-ai-be/pkg/chat/facts"
	"techstore-ai-be/pkg/chat/history"
	"techstore-ai-be/pkg/chat/prompt"
	"techstore-ai-be/pkg/intent"
	"techstore-ai-be/pkg/llm"
	"techstore-ai-be/pkg/store"

	"github.com/google/uuid"
)

const (
	completionTemperature = 0.7
	completionMaxTokens   = 1000
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	CreateSession() *dto.CreateSessionResponse
	ClearSession(sessionID string) bool
	GetSessionHistory(sessionID string) *dto.SessionHistoryResponse
	GetSessionStats(sessionID string) (*dto.SessionStatsResponse, error)
	ListSessions() *dto.ListSessionsResponse
	ListModels() *dto.ListModelsResponse
}

type chatService struct {
	provider     llm.LLMProvider
	defaultModel string
	classifier   *intent.Classifier
	resolver     *facts.Resolver
	summarizer   *history.Summarizer
	sessions     *memory.SessionStore
	logger       logger.ILogger
}

func NewChatService(
	provider llm.LLMProvider,
	defaultModel string,
	classifier *intent.Classifier,
	resolver *facts.Resolver,
	summarizer *history.Summarizer,
	sessions *memory.SessionStore,
	log logger.ILogger,
) IChatService {
	return &chatService{
		provider:     provider,
		defaultModel: defaultModel,
		classifier:   classifier,
		resolver:     resolver,
		summarizer:   summarizer,
		sessions:     sessions,
		logger:       log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.Message == "" {
		return nil, errors.New("message is required")
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}
	if !llm.IsValidModel(model) {
		return nil, fmt.Errorf("model %q is not valid. Available models: %s", model, llm.ValidModelIDs())
	}

	// Stored session history wins; caller-supplied history only fills in
	// when no session state exists.
	fullHistory := s.sessions.History(req.SessionID)
	if len(fullHistory) == 0 && len(req.History) > 0 {
		fullHistory = make([]store.Turn, len(req.History))
		for i, turn := range req.History {
			fullHistory[i] = store.Turn{Role: turn.Role, Content: turn.Content}
		}
	}
	window := history.Optimize(fullHistory, history.MaxRecentTurns)

	summary := ""
	if len(window.Overflow) > 0 {
		summary = s.summarizer.Summarize(ctx, window.Overflow)
	}

	detected := s.classifier.Classify(ctx, req.Message)

	databaseContext := ""
	usedDatabase := false
	if detected == intent.IntentDatabase {
		usedDatabase = true
		fact, err := s.resolver.Resolve(ctx, req.Message)
		if err != nil {
			s.logger.Warn("Chat", "Fact resolution failed, answering without database context", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			databaseContext = fact
		}
	}

	messages := prompt.Build(prompt.Input{
		UserMessage:     req.Message,
		Recent:          window.Recent,
		DatabaseContext: databaseContext,
		KnowledgeMode:   detected == intent.IntentKnowledge,
		Summary:         summary,
	})

	response, err := s.provider.Chat(ctx, messages,
		llm.WithModel(model),
		llm.WithTemperature(completionTemperature),
		llm.WithMaxTokens(completionMaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if req.SessionID != "" {
		s.sessions.AppendExchange(req.SessionID, req.Message, response, time.Now())
	}

	return &dto.ChatResponse{
		Response:     response,
		Intent:       string(detected),
		UsedDatabase: usedDatabase,
		Model:        model,
		SessionID:    req.SessionID,
		HasContext:   len(window.Recent) > 0 || summary != "",
	}, nil
}

func (s *chatService) CreateSession() *dto.CreateSessionResponse {
	return &dto.CreateSessionResponse{SessionID: uuid.New().String()}
}

func (s *chatService) ClearSession(sessionID string) bool {
	if _, ok := s.sessions.Get(sessionID); !ok {
		return false
	}
	s.sessions.Delete(sessionID)
	return true
}

func (s *chatService) GetSessionHistory(sessionID string) *dto.SessionHistoryResponse {
	turns := s.sessions.History(sessionID)
	out := make([]dto.SessionTurn, len(turns))
	for i, t := range turns {
		out[i] = dto.SessionTurn{Role: t.Role, Content: t.Content}
	}
	return &dto.SessionHistoryResponse{
		SessionID: sessionID,
		Total:     len(out),
		History:   out,
	}
}

func (s *chatService) ListSessions() *dto.ListSessionsResponse {
	ids := s.sessions.ActiveSessionIDs()
	return &dto.ListSessionsResponse{
		Total:    len(ids),
		Sessions: ids,
	}
}

func (s *chatService) GetSessionStats(sessionID string) (*dto.SessionStatsResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, errors.New("session not found")
	}
	return &dto.SessionStatsResponse{
		SessionID:       sess.ID,
		TotalMessages:   sess.TotalMessages,
		DurationMinutes: sess.DurationMinutes(),
		CreatedAt:       sess.CreatedAt.Format(time.RFC3339),
		LastActivity:    sess.LastActivity.Format(time.RFC3339),
	}, nil
}

func (s *chatService) ListModels() *dto.ListModelsResponse {
	models := llm.AvailableModels()
	resp := &dto.ListModelsResponse{
		Total:  len(models),
		Models: make([]dto.ModelInfoResponse, len(models)),
	}
	for i, m := range models {
		resp.Models[i] = dto.ModelInfoResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Provider:    m.Provider,
		}
	}
	return resp
}
