package geo

import (
	"github.com/openrelief/relief-api/schema"
)

// marker colors keyed by urgency
const (
	ColorCritical = "#dc2626"
	ColorHigh     = "#ea580c"
	ColorMedium   = "#ca8a04"
	ColorLow      = "#16a34a"
)

// MarkerColor maps an urgency level to its marker color. Any value outside
// the enumeration falls back to the low color.
func MarkerColor(urgency string) string {
	switch urgency {
	case schema.UrgencyCritical:
		return ColorCritical
	case schema.UrgencyHigh:
		return ColorHigh
	case schema.UrgencyMedium:
		return ColorMedium
	default:
		return ColorLow
	}
}

// Geometry - GeoJSON point geometry, coordinates are (longitude, latitude)
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Feature - one map marker with its popup properties
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection - GeoJSON rendition of a help request listing
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection builds one marker feature per request. The build is
// pure: the same request list always yields the same features, so a view
// can drop its markers and rebuild on every change without accumulating
// duplicates.
func NewFeatureCollection(requests []schema.HelpRequest) FeatureCollection {
	features := make([]Feature, 0, len(requests))

	for _, req := range requests {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{req.Longitude, req.Latitude},
			},
			Properties: map[string]interface{}{
				"id":           req.ID.String(),
				"title":        req.Title,
				"description":  req.Description,
				"category":     req.Category,
				"urgency":      req.Urgency,
				"address":      req.Address,
				"marker-color": MarkerColor(req.Urgency),
			},
		})
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
