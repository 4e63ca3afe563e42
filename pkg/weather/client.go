// pkg/weather/client.go
// Client forecast per jam dari Open-Meteo (temperature_2m + weather_code)

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"weather-advisor/internal/util"
)

var tracer = otel.Tracer("weather-advisor/pkg/weather")

// Hourly: array sejajar, satu elemen per jam.
// Open-Meteo bisa mengirim null untuk jam tanpa data, jadi nilai disimpan sebagai pointer.
type Hourly struct {
	Time          []string   `json:"time"`
	Temperature2m []*float64 `json:"temperature_2m"`
	WeatherCode   []*int     `json:"weather_code"`
}

type forecastResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Hourly    Hourly  `json:"hourly"`
}

type Config struct {
	BaseURL  string // default https://api.open-meteo.com
	Timezone string // default Asia/Tokyo
	Timeout  time.Duration
}

type Client struct {
	baseURL    string
	timezone   string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.open-meteo.com"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Tokyo"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timezone:   cfg.Timezone,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) HourlyForecast(ctx context.Context, lat, lon float64) (Hourly, error) {
	ctx, span := tracer.Start(ctx, "weather.hourly")
	defer span.End()
	span.SetAttributes(attribute.Float64("geo.lat", lat), attribute.Float64("geo.lon", lon))

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("hourly", "temperature_2m,weather_code")
	params.Set("timezone", c.timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return Hourly{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return Hourly{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Hourly{}, fmt.Errorf("read forecast body: %w", err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return Hourly{}, util.Upstream(fmt.Sprintf("forecast status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return Hourly{}, fmt.Errorf("decode forecast response: %w", err)
	}
	span.SetAttributes(attribute.Int("forecast.hours", len(fr.Hourly.Time)))
	return fr.Hourly, nil
}
