// internal/forecast/sample.go
package forecast

import (
	"bytes"
	"encoding/json"

	"weather-advisor/pkg/weather"
)

// SampleStride: ambil 1 dari setiap 6 jam
const SampleStride = 6

// Point: Temperature nil -> "temperature": null
type Point struct {
	Temperature *float64 `json:"temperature"`
	Weather     string   `json:"weather"`
}

type Entry struct {
	Time string
	Point
}

// Sampled: mapping timestamp -> Point dengan urutan kronologis (urutan sumber).
// Di-encode sebagai JSON object dengan urutan key dipertahankan.
type Sampled []Entry

// Sample mengambil elemen index 0, stride, 2*stride, ...
// Array yang panjangnya tidak sama dipotong ke yang terpendek.
func Sample(h weather.Hourly, stride int) Sampled {
	if stride <= 0 {
		stride = SampleStride
	}
	n := min(len(h.Time), len(h.Temperature2m), len(h.WeatherCode))

	out := make(Sampled, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		out = append(out, Entry{
			Time: h.Time[i],
			Point: Point{
				Temperature: h.Temperature2m[i],
				Weather:     labelOf(h.WeatherCode[i]),
			},
		})
	}
	return out
}

func (s Sampled) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Time)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Point)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
