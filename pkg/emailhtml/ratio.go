package emailhtml

import (
	"math"
	"strconv"
	"strings"
)

// ColumnWidths turns a colon-separated ratio such as "1:2:1" into column widths in
// percent. Segments that are not non-negative integers weigh zero. When the weights
// sum to zero every column gets an equal share.
func ColumnWidths(ratio string) []float64 {
	segments := strings.Split(ratio, ":")
	weights := make([]float64, len(segments))
	// summed as floats so huge segments cannot wrap the total negative
	total := 0.0
	for i, segment := range segments {
		w, err := strconv.Atoi(strings.TrimSpace(segment))
		if err != nil || w < 0 {
			w = 0
		}
		weights[i] = float64(w)
		total += weights[i]
	}

	widths := make([]float64, len(weights))
	for i, w := range weights {
		if total <= 0 || math.IsInf(total, 0) {
			widths[i] = 100 / float64(len(weights))
			continue
		}
		widths[i] = w / total * 100
	}
	return widths
}

// FormatPercent prints a width with the shortest decimal that round-trips, e.g. "25%"
// or "33.33333333333333%"
func FormatPercent(width float64) string {
	return strconv.FormatFloat(width, 'f', -1, 64) + "%"
}
