package editor

import (
	"math"
	"strconv"
	"strings"

	"stitch/internal/apperr"
)

// ParseTimestamp reads a position in seconds. It accepts plain seconds
// ("90", "12.5", "12,5"), MM:SS and HH:MM:SS.
func ParseTimestamp(raw string) (float64, error) {
	value := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if value == "" {
		return 0, apperr.Validationf("empty time value")
	}

	if !strings.Contains(value, ":") {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || !finite(v) || v < 0 {
			return 0, apperr.Validationf("invalid time %q", raw)
		}
		return v, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, apperr.Validationf("invalid time %q", raw)
	}
	parsed := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || !finite(v) || v < 0 {
			return 0, apperr.Validationf("invalid time %q", raw)
		}
		parsed[i] = v
	}

	if len(parsed) == 2 {
		if parsed[1] >= 60 {
			return 0, apperr.Validationf("seconds must be below 60 in %q", raw)
		}
		return parsed[0]*60 + parsed[1], nil
	}
	if parsed[1] >= 60 || parsed[2] >= 60 {
		return 0, apperr.Validationf("minutes and seconds must be below 60 in %q", raw)
	}
	return parsed[0]*3600 + parsed[1]*60 + parsed[2], nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatSeconds renders seconds without a trailing ".0".
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
