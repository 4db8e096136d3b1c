package models

import "time"

// RefreshToken is a server-stored opaque token used to mint new access
// tokens. Rotated on every refresh.
type RefreshToken struct {
	Token     string
	UserID    string
	Expires   time.Time
	CreatedAt time.Time
}
