// internal/handlers/mcp/get_weekly_forecast.go
// MCP Tool: get_weekly_forecast - forecast 1 minggu (sampling 6 jam) untuk sebuah lokasi

package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"weather-advisor/internal/forecast"
	"weather-advisor/internal/mcp"
)

type WeeklyForecaster interface {
	WeeklyForecast(ctx context.Context, location string) (forecast.Result, error)
}

type weeklyForecastReq struct {
	Location string `json:"location"`
}

// NewWeeklyForecastHandler: tool di-inject per handler, tidak ada state global.
// tool nil -> setiap request dijawab 503.
func NewWeeklyForecastHandler(tool WeeklyForecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveWeeklyForecast(tool, w, r)
	}
}

func serveWeeklyForecast(tool WeeklyForecaster, w http.ResponseWriter, r *http.Request) {
	if tool == nil {
		mcp.WriteToolError(w, http.StatusServiceUnavailable, "not_configured", "forecast tool not configured")
		return
	}

	var in weeklyForecastReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		mcp.WriteToolError(w, http.StatusBadRequest, "invalid_params", "params must be {\"location\": string}: "+err.Error())
		return
	}
	in.Location = strings.TrimSpace(in.Location)

	// lokasi tidak ditemukan -> 200 dengan {"error": "Location not found"}
	res, err := tool.WeeklyForecast(r.Context(), in.Location)
	if err != nil {
		mcp.WriteToolError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
