// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weather-advisor/internal/agent"
	"weather-advisor/internal/config"
	"weather-advisor/internal/forecast"
	mcphandlers "weather-advisor/internal/handlers/mcp"
	"weather-advisor/internal/mcp"
	"weather-advisor/internal/mcp/llm"
	"weather-advisor/internal/report"
	"weather-advisor/internal/util"
	"weather-advisor/pkg/geocode"
	"weather-advisor/pkg/weather"
)

// App menampung semua dependency untuk satu kali run
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	Registry *mcp.Registry
	Executor *agent.Executor
}

// New membuat client eksternal, mendaftarkan tool, dan menyiapkan executor
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	model, err := llm.New(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init llm: %w", err)
	}

	geo := geocode.New(geocode.Config{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
		Language:  cfg.Geocoder.Language,
		RPS:       cfg.Geocoder.RPS,
	})
	wx := weather.New(weather.Config{
		BaseURL:  cfg.Forecast.BaseURL,
		Timezone: cfg.Forecast.Timezone,
	})

	reg := mcp.NewRegistry()
	registerMCPTools(reg, forecast.NewTool(geo, wx))

	defs, err := mcp.LoadToolDefs()
	if err != nil {
		return nil, fmt.Errorf("load tool catalog: %w", err)
	}
	for _, d := range defs {
		if _, ok := reg.Get(d.Name); !ok {
			return nil, fmt.Errorf("tool %q in catalog is not registered", d.Name)
		}
	}

	return &App{
		cfg:      cfg,
		log:      logger,
		Registry: reg,
		Executor: &agent.Executor{
			LLM:           model,
			Tools:         mcp.NewDispatcher(reg),
			ToolDefs:      mcp.OpenAITools(defs),
			SystemPrompt:  agent.DefaultSystemPrompt,
			MaxIterations: cfg.Agent.MaxIterations,
			Verbose:       cfg.Agent.Verbose,
			Logger:        logger,
		},
	}, nil
}

// ----------------- MCP Wiring -----------------

func registerMCPTools(reg *mcp.Registry, tool mcphandlers.WeeklyForecaster) {
	reg.Register(forecast.ToolName, mcphandlers.NewWeeklyForecastHandler(tool))
}

// Run: agent -> Markdown -> file. Mengembalikan path file yang ditulis.
func (a *App) Run(ctx context.Context) (string, error) {
	runID := util.NewRunID()
	log := a.log.With("run_id", runID)
	a.Executor.Logger = log

	input := a.cfg.Agent.Input
	if input == "" {
		input = agent.DefaultInput
	}

	start := time.Now()
	log.Info("agent.start", "model", a.Executor.LLM.Model(), "tools", a.Registry.List())

	out, err := a.Executor.Invoke(ctx, input)
	if err != nil {
		return "", err
	}

	md := report.ToMarkdown(out)
	path, err := report.WriteFile(a.cfg.Output.Dir, a.cfg.Output.File, md)
	if err != nil {
		return "", err
	}
	log.Info("report.write", "path", path, "bytes", len(md), "duration_ms", time.Since(start).Milliseconds())
	return path, nil
}
