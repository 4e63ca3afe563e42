package forecast_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"weather-advisor/internal/forecast"
	"weather-advisor/pkg/weather"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int { return &i }

func hourlySeries(n int, code func(i int) int) weather.Hourly {
	h := weather.Hourly{}
	for i := 0; i < n; i++ {
		h.Time = append(h.Time, fmt.Sprintf("2026-10-%02dT%02d:00", 18+i/24, i%24))
		h.Temperature2m = append(h.Temperature2m, fptr(10+float64(i)/10))
		h.WeatherCode = append(h.WeatherCode, iptr(code(i)))
	}
	return h
}

func TestSampleCountAndIndices(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 7, 24, 25, 168} {
		h := hourlySeries(n, func(int) int { return 1 })
		s := forecast.Sample(h, forecast.SampleStride)

		want := (n + 5) / 6
		if len(s) != want {
			t.Fatalf("n=%d: got %d entries, want %d", n, len(s), want)
		}
		for k, e := range s {
			i := k * 6
			if e.Time != h.Time[i] || *e.Temperature != *h.Temperature2m[i] {
				t.Fatalf("n=%d entry %d does not match hourly index %d: %+v", n, k, i, e)
			}
		}
	}
}

func TestSampleDayAllClear(t *testing.T) {
	h := hourlySeries(24, func(int) int { return 0 })
	s := forecast.Sample(h, forecast.SampleStride)

	if len(s) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(s))
	}
	for k, ts := range []string{"2026-10-18T00:00", "2026-10-18T06:00", "2026-10-18T12:00", "2026-10-18T18:00"} {
		if s[k].Time != ts {
			t.Fatalf("entry %d: got %s want %s", k, s[k].Time, ts)
		}
		if s[k].Weather != "快晴" {
			t.Fatalf("entry %d: unexpected label %q", k, s[k].Weather)
		}
	}
}

func TestSampleLabels(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "快晴"},
		{3, "曇り"},
		{45, "霧"},
		{61, "小雨"},
		{86, "大雪"},
		{99, "unknown(99)"},
		{-1, "unknown(-1)"},
	}
	h := weather.Hourly{}
	for i, c := range cases {
		h.Time = append(h.Time, fmt.Sprintf("t%d", i))
		h.Temperature2m = append(h.Temperature2m, fptr(0))
		h.WeatherCode = append(h.WeatherCode, iptr(c.code))
	}
	s := forecast.Sample(h, 1)

	for i, c := range cases {
		if s[i].Weather != c.want {
			t.Fatalf("code %d: got %q want %q", c.code, s[i].Weather, c.want)
		}
	}
	if forecast.Label(99) != "unknown(99)" {
		t.Fatalf("unexpected label for 99: %q", forecast.Label(99))
	}
}

func TestSampleMismatchedArrays(t *testing.T) {
	h := weather.Hourly{
		Time:          []string{"a", "b", "c", "d", "e", "f", "g"},
		Temperature2m: []*float64{fptr(1), fptr(2), fptr(3), fptr(4), fptr(5), fptr(6), fptr(7)},
		WeatherCode:   []*int{iptr(0), iptr(0), iptr(0)},
	}
	s := forecast.Sample(h, forecast.SampleStride)
	if len(s) != 1 || s[0].Time != "a" {
		t.Fatalf("expected sampling bounded by shortest array, got %+v", s)
	}
}

func TestSampledJSONKeepsOrderAndIsDeterministic(t *testing.T) {
	h := hourlySeries(48, func(i int) int { return []int{0, 2, 63, 99}[i%4] })

	a, err := json.Marshal(forecast.Sample(h, forecast.SampleStride))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(forecast.Sample(h, forecast.SampleStride))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("output differs between runs:\n%s\n%s", a, b)
	}

	// key pertama harus timestamp paling awal
	prefix := `{"2026-10-18T00:00":{"temperature":10,"weather":"快晴"},"2026-10-18T06:00":`
	if !bytes.HasPrefix(a, []byte(prefix)) {
		t.Fatalf("unexpected JSON prefix: %s", a)
	}

	var decoded map[string]forecast.Point
	if err := json.Unmarshal(a, &decoded); err != nil {
		t.Fatalf("output is not a JSON object: %v", err)
	}
	if len(decoded) != 8 {
		t.Fatalf("expected 8 keys, got %d", len(decoded))
	}
}

func TestSampledEmpty(t *testing.T) {
	b, err := json.Marshal(forecast.Sampled(nil))
	if err != nil || string(b) != "{}" {
		t.Fatalf("expected {}, got %s (%v)", b, err)
	}
}

// Jam tanpa data dari Open-Meteo datang sebagai null dan harus tetap null di output
func TestSampleNullHourlyValues(t *testing.T) {
	var h weather.Hourly
	raw := `{"time":["a","b"],"temperature_2m":[null,12.5],"weather_code":[null,1]}`
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		t.Fatalf("decode hourly with nulls: %v", err)
	}

	b, err := json.Marshal(forecast.Sample(h, 1))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"a":{"temperature":null,"weather":"unknown(null)"},"b":{"temperature":12.5,"weather":"晴れ"}}`
	if string(b) != want {
		t.Fatalf("got %s\nwant %s", b, want)
	}
}
