package boundary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// DefaultURL points at the Florida outline of the world.geo.json dataset.
const DefaultURL = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries/USA/FL.geo.json"

// maxDocumentBytes bounds how much of a response body is read.
const maxDocumentBytes = 64 << 20

var (
	// ErrNoGeometry is returned when a document holds no usable polygon.
	ErrNoGeometry = errors.New("boundary: no polygon geometry")
	// ErrUnsupportedGeometry is returned for geometries without an exterior ring.
	ErrUnsupportedGeometry = errors.New("boundary: unsupported geometry type")
)

// Fetch performs a single GET of url and decodes the boundary curve from the
// GeoJSON response. client may be nil, in which case http.DefaultClient is
// used. There are no retries.
func Fetch(ctx context.Context, client *http.Client, url string) (Curve, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Curve{}, fmt.Errorf("boundary request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Curve{}, fmt.Errorf("boundary fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Curve{}, fmt.Errorf("boundary fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return Curve{}, fmt.Errorf("boundary read body: %w", err)
	}
	return Decode(data)
}

// Decode extracts the boundary curve from a GeoJSON FeatureCollection,
// Feature or bare geometry document. The first feature is used.
func Decode(data []byte) (Curve, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Curve{}, fmt.Errorf("boundary decode: %w", err)
	}

	var g orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Curve{}, fmt.Errorf("boundary decode feature collection: %w", err)
		}
		if len(fc.Features) == 0 {
			return Curve{}, fmt.Errorf("%w: empty feature collection", ErrNoGeometry)
		}
		g = fc.Features[0].Geometry
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Curve{}, fmt.Errorf("boundary decode feature: %w", err)
		}
		g = f.Geometry
	case "":
		return Curve{}, fmt.Errorf("boundary decode: missing GeoJSON type")
	default:
		geom, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Curve{}, fmt.Errorf("boundary decode geometry: %w", err)
		}
		g = geom.Geometry()
	}

	ring, err := exteriorRing(g)
	if err != nil {
		return Curve{}, err
	}

	c := FromRing(ring)
	if err := c.Validate(); err != nil {
		return Curve{}, fmt.Errorf("boundary decode: %w", err)
	}
	return c, nil
}

// exteriorRing returns the outer ring of a Polygon, or of the largest
// polygon of a MultiPolygon.
func exteriorRing(g orb.Geometry) (orb.Ring, error) {
	switch g := g.(type) {
	case nil:
		return nil, fmt.Errorf("%w: feature has no geometry", ErrNoGeometry)
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return nil, fmt.Errorf("%w: empty polygon", ErrNoGeometry)
		}
		return g[0], nil
	case orb.MultiPolygon:
		var (
			best     orb.Ring
			bestArea = -1.0
		)
		for _, p := range g {
			if len(p) == 0 || len(p[0]) == 0 {
				continue
			}
			if a := math.Abs(planar.Area(p[0])); a > bestArea {
				best, bestArea = p[0], a
			}
		}
		if best == nil {
			return nil, fmt.Errorf("%w: empty multipolygon", ErrNoGeometry)
		}
		return best, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}
