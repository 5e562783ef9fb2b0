package models

import "time"

// Place represents a point of interest. Address, hours, price and the
// update timestamp are restricted to authenticated administrators on
// collection reads.
type Place struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Hours       string    `json:"hours"`
	Price       string    `json:"price"`
	PhotoURL    string    `json:"photo_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicPlace is the projection visible to unauthenticated callers.
type PublicPlace struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	PhotoURL    string  `json:"photo_url"`
}

// Public returns the place's public projection.
func (p *Place) Public() PublicPlace {
	return PublicPlace{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Lat:         p.Lat,
		Lng:         p.Lng,
		PhotoURL:    p.PhotoURL,
	}
}
