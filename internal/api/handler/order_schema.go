package handler

import "github.com/venuelink/venue-services/internal/core/ports"

type catalogItemRequest struct {
	VenueID    string `json:"venue_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
	IsActive   bool   `json:"is_active"`
}

func (r catalogItemRequest) toInput() ports.CatalogItemInput {
	return ports.CatalogItemInput{
		VenueID:    r.VenueID,
		Name:       r.Name,
		PriceCents: r.PriceCents,
		IsActive:   r.IsActive,
	}
}

type orderLineRequest struct {
	CatalogItemID string `json:"catalog_item_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
}

type placeOrderRequest struct {
	VenueID string             `json:"venue_id" validate:"required"`
	Lines   []orderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type advanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted delivered cancelled"`
}
