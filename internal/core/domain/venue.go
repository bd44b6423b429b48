package domain

import (
	"errors"
	"time"
)

var ErrVenueNotFound = errors.New("venue not found")

// Venue is a physical location that hosts events, parking and concierge
// commerce. Slug is the URL-safe identifier used in public listings.
type Venue struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Address   string    `json:"address" gorm:"size:512"`
	City      string    `json:"city" gorm:"size:128;index"`
	Timezone  string    `json:"timezone" gorm:"size:64"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
