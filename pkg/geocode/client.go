// pkg/geocode/client.go
// Client geocoding berbasis Nominatim (OpenStreetMap): nama tempat -> koordinat.

package geocode

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
	"golang.org/x/time/rate"

	"weather-advisor/internal/util"
)

var tracer = otel.Tracer("weather-advisor/pkg/geocode")

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Config struct {
	BaseURL   string  // default https://nominatim.openstreetmap.org
	UserAgent string  // wajib menurut kebijakan Nominatim
	Language  string  // Accept-Language, mis. "ja"
	RPS       float64 // batas request per detik (Nominatim: maks 1)
	Timeout   time.Duration
}

type Client struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "test_weather_app"
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), 1),
	}
}

type searchHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode mengembalikan koordinat hasil pertama.
// Bila tidak ada hasil, error-nya memenuhi IsNotFound.
func (c *Client) Geocode(ctx context.Context, query string) (Coordinate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Coordinate{}, util.NotFound("empty location query")
	}

	ctx, span := tracer.Start(ctx, "geocode.search")
	defer span.End()
	span.SetAttributes(attribute.String("geocode.query", query))

	if err := c.limiter.Wait(ctx); err != nil {
		return Coordinate{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Coordinate{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return Coordinate{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinate{}, fmt.Errorf("read geocode body: %w", err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, util.Upstream(fmt.Sprintf("geocoder status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var hits []searchHit
	if err := json.Unmarshal(body, &hits); err != nil {
		return Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(hits) == 0 {
		return Coordinate{}, util.NotFound(fmt.Sprintf("no geocode result for %q", query))
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse lat %q: %w", hits[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse lon %q: %w", hits[0].Lon, err)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

func IsNotFound(err error) bool {
	return util.HasCode(err, util.CodeNotFound)
}
