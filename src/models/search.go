package models

// SearchResult is a keyword match from either collection. Kind is
// "artisan" or "place"; for places, Category carries the place type.
type SearchResult struct {
	Kind        string  `json:"kind"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	PhotoURL    string  `json:"photo_url"`
}

const (
	KindArtisan = "artisan"
	KindPlace   = "place"
)
