package memory

import (
	"testing"
	"time"

	"techstore-ai-be/pkg/store"
)

func TestAppendExchangeCreatesSession(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	sess := s.AppendExchange("sess-1", "hola", "¡Hola! ¿En qué puedo ayudarte?", now)

	if sess.TotalMessages != 2 {
		t.Errorf("TotalMessages = %d, want 2", sess.TotalMessages)
	}
	if len(sess.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(sess.History))
	}
	if sess.History[0].Role != store.RoleUser || sess.History[1].Role != store.RoleAssistant {
		t.Errorf("history roles = %q, %q; want user, assistant", sess.History[0].Role, sess.History[1].Role)
	}
	if !sess.LastActivity.Equal(now) {
		t.Errorf("LastActivity = %v, want %v", sess.LastActivity, now)
	}
}

func TestAppendExchangeGrowsHistory(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	s.AppendExchange("sess-1", "primera", "respuesta", now)
	sess := s.AppendExchange("sess-1", "segunda", "respuesta", now.Add(time.Minute))

	if len(sess.History) != 4 {
		t.Errorf("History length = %d, want 4", len(sess.History))
	}
	if sess.TotalMessages != 4 {
		t.Errorf("TotalMessages = %d, want 4", sess.TotalMessages)
	}
}

func TestHistoryAbsentSession(t *testing.T) {
	s := NewSessionStore()

	if got := s.History("missing"); len(got) != 0 {
		t.Errorf("History for absent session = %v, want empty", got)
	}
}

func TestDeleteSession(t *testing.T) {
	s := NewSessionStore()
	s.AppendExchange("sess-1", "hola", "respuesta", time.Now())

	s.Delete("sess-1")

	if _, ok := s.Get("sess-1"); ok {
		t.Error("session still present after Delete")
	}
}

func TestSweepExpired(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	s.AppendExchange("stale", "hola", "respuesta", now.Add(-25*time.Hour))
	s.AppendExchange("fresh", "hola", "respuesta", now.Add(-time.Hour))

	removed := s.SweepExpired(now)

	if removed != 1 {
		t.Errorf("SweepExpired removed %d sessions, want 1", removed)
	}
	if _, ok := s.Get("stale"); ok {
		t.Error("stale session survived the sweep")
	}
	if _, ok := s.Get("fresh"); !ok {
		t.Error("fresh session was swept")
	}
}

func TestSweepKeepsExactly24hIdle(t *testing.T) {
	s := NewSessionStore()
	now := time.Now()

	s.AppendExchange("edge", "hola", "respuesta", now.Add(-IdleExpiry))

	if removed := s.SweepExpired(now); removed != 0 {
		t.Errorf("session idle exactly %v was swept, want kept", IdleExpiry)
	}
}
