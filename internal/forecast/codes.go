// internal/forecast/codes.go
// Tabel weather code (WMO, versi Open-Meteo) -> label untuk laporan.
package forecast

import "fmt"

var weatherCodeLabels = map[int]string{
	0:  "快晴",
	1:  "晴れ",
	2:  "薄曇り",
	3:  "曇り",
	45: "霧",
	48: "霧氷",
	51: "霧雨",
	53: "霧雨",
	55: "霧雨",
	61: "小雨",
	63: "雨",
	65: "強い雨",
	71: "小雪",
	73: "雪",
	75: "強い雪",
	80: "にわか雨",
	81: "雨",
	82: "激しいにわか雨",
	85: "にわか雪",
	86: "大雪",
}

// Label: kode di luar tabel menjadi "unknown(<code>)", bukan error
func Label(code int) string {
	if l, ok := weatherCodeLabels[code]; ok {
		return l
	}
	return fmt.Sprintf("unknown(%d)", code)
}

// labelOf: kode null (tidak ada data) menjadi "unknown(null)"
func labelOf(code *int) string {
	if code == nil {
		return "unknown(null)"
	}
	return Label(*code)
}
