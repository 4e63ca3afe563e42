// internal/forecast/tool.go
// Tool get_weekly_forecast: geocode -> forecast per jam -> sampling 6 jam.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"weather-advisor/pkg/geocode"
	"weather-advisor/pkg/weather"
)

const (
	ToolName = "get_weekly_forecast"

	// pesan yang dikembalikan ke model bila lokasi tidak ditemukan
	LocationNotFound = "Location not found"
)

var tracer = otel.Tracer("weather-advisor/internal/forecast")

type Geocoder interface {
	Geocode(ctx context.Context, query string) (geocode.Coordinate, error)
}

type HourlySource interface {
	HourlyForecast(ctx context.Context, lat, lon float64) (weather.Hourly, error)
}

// Result: salah satu dari indikator error atau hasil sampling
type Result struct {
	Error    string
	Forecast Sampled
}

func (r Result) NotFound() bool { return r.Error != "" }

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(map[string]string{"error": r.Error})
	}
	return r.Forecast.MarshalJSON()
}

type Tool struct {
	Geocoder  Geocoder
	Forecasts HourlySource
	Stride    int
}

func NewTool(g Geocoder, f HourlySource) *Tool {
	return &Tool{Geocoder: g, Forecasts: f, Stride: SampleStride}
}

// WeeklyForecast: lokasi tidak ditemukan dikembalikan sebagai nilai (bukan error)
// dan forecast service tidak dipanggil. Error lain diteruskan ke caller.
func (t *Tool) WeeklyForecast(ctx context.Context, location string) (Result, error) {
	ctx, span := tracer.Start(ctx, "tool."+ToolName)
	defer span.End()
	span.SetAttributes(attribute.String("tool.location", location))

	coord, err := t.Geocoder.Geocode(ctx, location)
	if err != nil {
		if geocode.IsNotFound(err) {
			span.SetAttributes(attribute.Bool("tool.not_found", true))
			return Result{Error: LocationNotFound}, nil
		}
		span.RecordError(err)
		return Result{}, fmt.Errorf("geocode %q: %w", location, err)
	}

	h, err := t.Forecasts.HourlyForecast(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("hourly forecast: %w", err)
	}

	s := Sample(h, t.Stride)
	span.SetAttributes(attribute.Int("tool.samples", len(s)))
	return Result{Forecast: s}, nil
}
