// internal/config/config.go
// Loader konfigurasi dari environment variables (+ file .env opsional)
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName  string
	AppEnv   string // dev | prod
	LogLevel string

	LLM struct {
		APIKey      string
		BaseURL     string
		Model       string
		Temperature float32
		Timeout     time.Duration
	}

	Agent struct {
		MaxIterations int
		Verbose       bool
		Input         string
	}

	Geocoder struct {
		BaseURL   string
		UserAgent string
		Language  string
		RPS       float64
	}

	Forecast struct {
		BaseURL  string
		Timezone string
	}

	Output struct {
		Dir  string
		File string
	}

	ZipkinURL string
}

// Load membaca .env (jika ada) lalu environment.
// Env yang sudah di-set di proses tidak ditimpa oleh .env.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{}
	c.AppName = getEnv("APP_NAME", "weather-advisor")
	c.AppEnv = getEnv("APP_ENV", "dev")
	c.LogLevel = getEnv("LOG_LEVEL", "info")

	// Kunci LLM: nama lama (GOOGLE_AI_ST_API) tetap diterima
	c.LLM.APIKey = firstEnv("LLM_API_KEY", "GOOGLE_AI_ST_API", "OPENAI_API_KEY")
	c.LLM.BaseURL = strings.TrimRight(getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"), "/")
	c.LLM.Model = getEnv("LLM_MODEL", "gemini-2.5-flash")
	c.LLM.Temperature = float32(getEnvFloat("LLM_TEMPERATURE", 0.5))
	c.LLM.Timeout = time.Duration(getEnvInt("LLM_TIMEOUT_SEC", 60)) * time.Second

	c.Agent.MaxIterations = getEnvInt("AGENT_MAX_ITERATIONS", 15)
	c.Agent.Verbose = getEnvBool("AGENT_VERBOSE", true)
	c.Agent.Input = getEnv("AGENT_INPUT", "")

	c.Geocoder.BaseURL = strings.TrimRight(getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"), "/")
	c.Geocoder.UserAgent = getEnv("GEOCODER_USER_AGENT", "test_weather_app")
	c.Geocoder.Language = getEnv("GEOCODER_LANGUAGE", "ja")
	c.Geocoder.RPS = getEnvFloat("GEOCODER_RPS", 1)

	c.Forecast.BaseURL = strings.TrimRight(getEnv("FORECAST_URL", "https://api.open-meteo.com"), "/")
	c.Forecast.Timezone = getEnv("FORECAST_TIMEZONE", "Asia/Tokyo")

	c.Output.Dir = getEnv("OUTPUT_DIR", "./out")
	c.Output.File = getEnv("OUTPUT_FILE", "res.md")

	c.ZipkinURL = getEnv("ZIPKIN_URL", "")

	if c.LLM.APIKey == "" {
		log.Println("[WARN] LLM_API_KEY / GOOGLE_AI_ST_API is not set, agent cannot run")
	}

	return c
}

// Validate dipanggil sekali saat startup (fail-fast).
func (c *Config) Validate() error {
	var errs []error
	if c.LLM.APIKey == "" {
		errs = append(errs, errors.New("LLM_API_KEY not set"))
	}
	switch c.AppEnv {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", c.AppEnv))
	}
	if c.Agent.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("AGENT_MAX_ITERATIONS must be > 0, got %d", c.Agent.MaxIterations))
	}
	if c.Geocoder.RPS <= 0 {
		errs = append(errs, fmt.Errorf("GEOCODER_RPS must be > 0, got %v", c.Geocoder.RPS))
	}
	if strings.TrimSpace(c.Output.File) == "" {
		errs = append(errs, errors.New("OUTPUT_FILE is empty"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}
