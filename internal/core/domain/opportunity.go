package domain

import (
	"errors"
	"time"
)

// OpportunityStatus is the lifecycle state of a partner opportunity.
type OpportunityStatus string

const (
	OpportunityOpen   OpportunityStatus = "open"
	OpportunityClosed OpportunityStatus = "closed"
	OpportunityFilled OpportunityStatus = "filled"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

// Opportunity is a partner engagement offered by a venue (sponsorships,
// pop-up retail space, catering slots and the like).
type Opportunity struct {
	ID          string            `json:"id" gorm:"primaryKey;size:36"`
	VenueID     string            `json:"venue_id" gorm:"size:36;not null;index"`
	Title       string            `json:"title" gorm:"size:255;not null"`
	Description string            `json:"description" gorm:"type:text"`
	Status      OpportunityStatus `json:"status" gorm:"size:32;not null;default:open"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
