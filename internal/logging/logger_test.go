package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"weather-advisor/internal/config"
	"weather-advisor/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestProdLoggerWritesJSON(t *testing.T) {
	cfg := &config.Config{AppName: "weather-advisor", AppEnv: "prod", LogLevel: "info"}
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, cfg, "1.2.3")

	logger.Debug("hidden")
	logger.Info("report.write", "path", "out/res.md")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "report.write" || rec["version"] != "1.2.3" || rec["path"] != "out/res.md" {
		t.Fatalf("unexpected record: %v", rec)
	}
}
