// internal/agent/executor.go
// Agent tool-calling: model memilih tool, executor menjalankannya, hasil dikembalikan
// ke model sampai model memberi jawaban akhir.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"weather-advisor/internal/mcp"
	"weather-advisor/internal/mcp/llm"
	"weather-advisor/internal/report"
)

const DefaultMaxIterations = 15

var ErrMaxIterations = errors.New("agent stopped: max iterations reached")

var tracer = otel.Tracer("weather-advisor/internal/agent")

type ToolDispatcher interface {
	Execute(ctx context.Context, call mcp.ToolRequest) (mcp.ExecResult, error)
}

type Executor struct {
	LLM           llm.Client
	Tools         ToolDispatcher
	ToolDefs      []openai.Tool
	SystemPrompt  string
	MaxIterations int
	Verbose       bool
	Logger        *slog.Logger
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Invoke menjalankan satu percakapan sampai jawaban akhir.
func (e *Executor) Invoke(ctx context.Context, input string) (report.Output, error) {
	ctx, span := tracer.Start(ctx, "agent.invoke")
	defer span.End()

	maxIter := e.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	system := e.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: input},
	}
	log := e.logger()

	for step := 1; step <= maxIter; step++ {
		start := time.Now()
		msg, err := e.LLM.ChatWithTools(ctx, messages, e.ToolDefs)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("agent step %d: %w", step, err)
		}

		if len(msg.ToolCalls) == 0 {
			span.SetAttributes(attribute.Int("agent.steps", step))
			if e.Verbose {
				log.Info("agent.finish", "step", step, "duration_ms", time.Since(start).Milliseconds())
			}
			return report.FromMessage(msg), nil
		}

		// pesan assistant (berisi tool_calls) wajib masuk histori sebelum pesan tool
		messages = append(messages, msg)

		for _, tc := range msg.ToolCalls {
			args := json.RawMessage(tc.Function.Arguments)
			if e.Verbose {
				log.Info("agent.tool_call", "step", step, "tool", tc.Function.Name, "args", tc.Function.Arguments)
			}

			res, err := e.Tools.Execute(ctx, mcp.ToolRequest{
				CallID: tc.ID,
				Tool:   tc.Function.Name,
				Params: args,
			})
			if err != nil {
				span.RecordError(err)
				return nil, fmt.Errorf("agent step %d: %w", step, err)
			}

			if e.Verbose {
				log.Info("agent.tool_result", "step", step, "tool", res.Tool, "status", res.Status, "bytes", len(res.Body))
			}
			if !res.OK() {
				log.Warn("agent.tool_rejected", "tool", res.Tool, "status", res.Status, "body", string(res.Body))
			}

			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(res.Body),
				Name:       tc.Function.Name,
				ToolCallID: tc.ID,
			})
		}
	}

	span.RecordError(ErrMaxIterations)
	return nil, ErrMaxIterations
}
