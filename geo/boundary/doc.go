// Package boundary obtains the closed planar curve that the rest of the
// pipeline analyses.
//
// A curve is either the exterior ring of a polygon fetched as GeoJSON from a
// remote URL, or a deterministic synthetic loop used when that fetch fails.
// Load is the single recovery point: it never returns an error.
package boundary
