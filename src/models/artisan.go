package models

import "time"

// Artisan represents a local artisan listing. All fields are public.
type Artisan struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Phone       string    `json:"phone"`
	WhatsApp    string    `json:"whatsapp"`
	Instagram   string    `json:"instagram"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	PhotoURL    string    `json:"photo_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicArtisan is the projection returned to API callers.
type PublicArtisan struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Phone       string    `json:"phone"`
	WhatsApp    string    `json:"whatsapp"`
	Instagram   string    `json:"instagram"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	PhotoURL    string    `json:"photo_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Public returns the artisan's public projection. Artisans carry no
// restricted fields today; the explicit projection keeps future columns
// from leaking by accident.
func (a *Artisan) Public() PublicArtisan {
	return PublicArtisan{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
		Phone:       a.Phone,
		WhatsApp:    a.WhatsApp,
		Instagram:   a.Instagram,
		Address:     a.Address,
		Lat:         a.Lat,
		Lng:         a.Lng,
		PhotoURL:    a.PhotoURL,
		UpdatedAt:   a.UpdatedAt,
	}
}
