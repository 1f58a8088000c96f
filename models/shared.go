package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lng returns the longitude, or 0 when the point is empty.
func (g GeoPoint) Lng() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Lat returns the latitude, or 0 when the point is empty.
func (g GeoPoint) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// IsUnset reports whether the point is missing or sits on the (0,0) sentinel
// used for providers that never set a location.
func (g GeoPoint) IsUnset() bool {
	return len(g.Coordinates) < 2 || (g.Coordinates[0] == 0 && g.Coordinates[1] == 0)
}

// MediaAsset references a file held by the external media service.
type MediaAsset struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

// Identity is the authenticated caller supplied by the session layer.
type Identity struct {
	UserID string
	Role   string
}

const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)
