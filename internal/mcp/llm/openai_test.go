package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"weather-advisor/internal/mcp/llm"
)

func TestNewRequiresKey(t *testing.T) {
	if _, err := llm.New(llm.Config{APIKey: "  "}); err == nil {
		t.Fatalf("expected error without api key")
	}
	c, err := llm.New(llm.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != "gemini-2.5-flash" {
		t.Fatalf("unexpected default model %q", c.Model())
	}
}

func TestChatWithToolsRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var in struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			Tools       []struct {
				Type     string `json:"type"`
				Function struct {
					Name string `json:"name"`
				} `json:"function"`
			} `json:"tools"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if in.Model != "gemini-2.5-flash" || len(in.Tools) != 1 || in.Tools[0].Function.Name != "get_weekly_forecast" {
			t.Errorf("unexpected request %+v", in)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   in.Model,
			"choices": []map[string]any{{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": "",
					"tool_calls": []map[string]any{{
						"id":   "call_1",
						"type": "function",
						"function": map[string]any{
							"name":      "get_weekly_forecast",
							"arguments": `{"location":"東京"}`,
						},
					}},
				},
				"finish_reason": "tool_calls",
			}},
		})
	}))
	defer srv.Close()

	c, err := llm.New(llm.Config{APIKey: "test-key", BaseURL: srv.URL + "/v1/", Model: "gemini-2.5-flash", Temperature: 0.5})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	tools := []openai.Tool{{
		Type:     openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{Name: "get_weekly_forecast", Parameters: json.RawMessage(`{"type":"object"}`)},
	}}
	msg, err := c.ChatWithTools(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "東京の天気は？"},
	}, tools)
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if len(msg.ToolCalls) != 1 || msg.ToolCalls[0].Function.Name != "get_weekly_forecast" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.ToolCalls[0].Function.Arguments != `{"location":"東京"}` {
		t.Fatalf("unexpected arguments %q", msg.ToolCalls[0].Function.Arguments)
	}
}

func TestChatWithToolsNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	c, _ := llm.New(llm.Config{APIKey: "k", BaseURL: srv.URL})
	if _, err := c.ChatWithTools(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
