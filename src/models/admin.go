package models

import "time"

// SuperAdmin represents an administrator account. Emails are stored
// trimmed and lowercased.
type SuperAdmin struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never expose
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

// AdminIdentity is the enumeration-safe identity returned on login and
// attached to authenticated requests.
type AdminIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
