package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techstore-ai-be/pkg/llm"
)

func TestChatSendsOptionsAndParsesResponse(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hola"}},
			},
		})
	}))
	defer server.Close()

	p := NewGroqProvider(server.URL, "test-key", "default-model")

	got, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "saluda"}},
		llm.WithModel("llama-3.1-8b-instant"),
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(10),
	)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hola" {
		t.Errorf("Chat = %q, want %q", got, "hola")
	}
	if captured["model"] != "llama-3.1-8b-instant" {
		t.Errorf("model = %v", captured["model"])
	}
	if captured["temperature"] != 0.1 {
		t.Errorf("temperature = %v", captured["temperature"])
	}
	if captured["max_tokens"] != float64(10) {
		t.Errorf("max_tokens = %v", captured["max_tokens"])
	}
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Messages[1].Role != "assistant" {
			t.Errorf("role = %q, want assistant", req.Messages[1].Role)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	p := NewGroqProvider(server.URL, "key", "m")
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hola"},
		{Role: "model", Content: "respuesta previa"},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestChatSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer server.Close()

	p := NewGroqProvider(server.URL, "key", "m")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hola"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "rate limit exceeded"; err.Error() != "groq error: "+want {
		t.Errorf("err = %v", err)
	}
}
