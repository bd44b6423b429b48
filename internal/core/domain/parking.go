package domain

import (
	"errors"
	"time"
)

var (
	ErrParkingLotNotFound     = errors.New("parking lot not found")
	ErrParkingLotFull         = errors.New("parking lot is full")
	ErrParkingSessionNotFound = errors.New("parking session not found")
	ErrParkingSessionClosed   = errors.New("parking session already closed")
)

// ParkingLot is a parking area attached to a venue. Occupied is maintained
// by the repository's conditional update when sessions open and close.
type ParkingLot struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	VenueID   string    `json:"venue_id" gorm:"size:36;not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Spaces    int       `json:"spaces"`
	Occupied  int       `json:"occupied"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParkingSession records a single vehicle's stay. Pricing is intentionally
// not modelled; only the open/close timestamps are recorded.
type ParkingSession struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	LotID       string     `json:"lot_id" gorm:"size:36;not null;index"`
	UserID      string     `json:"user_id" gorm:"size:36;not null;index"`
	PlateNumber string     `json:"plate_number" gorm:"size:16;not null"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
