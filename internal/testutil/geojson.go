package testutil

import (
	"fmt"
	"strings"
)

// RingJSON renders x/y as a GeoJSON linear ring coordinate array.
func RingJSON(x, y []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range x {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "[%g,%g]", x[i], y[i])
	}
	b.WriteByte(']')
	return b.String()
}

// PolygonFeatureCollection wraps a single exterior ring in a one-feature
// GeoJSON FeatureCollection.
func PolygonFeatureCollection(x, y []float64) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"FeatureCollection","features":[{"type":"Feature","id":"T","properties":{"name":"test"},"geometry":{"type":"Polygon","coordinates":[%s]}}]}`,
		RingJSON(x, y),
	))
}

// MultiPolygonFeature wraps several exterior rings in a single GeoJSON
// Feature with a MultiPolygon geometry.
func MultiPolygonFeature(rings ...[2][]float64) []byte {
	parts := make([]string, len(rings))
	for i, r := range rings {
		parts[i] = "[" + RingJSON(r[0], r[1]) + "]"
	}
	return []byte(fmt.Sprintf(
		`{"type":"Feature","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[%s]}}`,
		strings.Join(parts, ","),
	))
}
