package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/ports"
)

// VenueHandler handles venue CRUD.
type VenueHandler struct {
	service ports.VenueService
}

func NewVenueHandler(service ports.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

type venueRequest struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Address  string `json:"address"`
	City     string `json:"city" validate:"required"`
	Timezone string `json:"timezone"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

func (r venueRequest) toInput() ports.VenueInput {
	return ports.VenueInput{
		Name:     r.Name,
		Slug:     r.Slug,
		Address:  r.Address,
		City:     r.City,
		Timezone: r.Timezone,
		Capacity: r.Capacity,
	}
}

// Create handles POST /v1/venues.
//
// @Summary      Create a venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      venueRequest  true  "Venue details"
// @Success      201   {object}  domain.Venue
// @Failure      403   {object}  map[string]string
// @Router       /v1/venues [post]
func (h *VenueHandler) Create(c echo.Context) error {
	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	venue, err := h.service.CreateVenue(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, venue)
}

// Get handles GET /v1/venues/:id. The path segment accepts either a venue
// id or its slug.
//
// @Summary      Get a venue by id or slug
// @Tags         venues
// @Produce      json
// @Param        id  path      string  true  "Venue id or slug"
// @Success      200 {object}  domain.Venue
// @Failure      404 {object}  map[string]string
// @Router       /v1/venues/{id} [get]
func (h *VenueHandler) Get(c echo.Context) error {
	venue, err := h.service.GetVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venue)
}

// List handles GET /v1/venues.
//
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Param        city    query     string  false  "Filter by city"
// @Param        active  query     bool    false  "Only active venues"
// @Success      200     {array}   domain.Venue
// @Router       /v1/venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	filter := ports.VenueFilter{
		City:       c.QueryParam("city"),
		ActiveOnly: c.QueryParam("active") == "true",
	}
	venues, err := h.service.ListVenues(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venues)
}

// Update handles PUT /v1/venues/:id.
//
// @Summary      Update a venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Venue id"
// @Param        body  body      venueRequest  true  "Venue details"
// @Success      200   {object}  domain.Venue
// @Failure      404   {object}  map[string]string
// @Router       /v1/venues/{id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	venue, err := h.service.UpdateVenue(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venue)
}

// Delete handles DELETE /v1/venues/:id.
//
// @Summary      Delete a venue
// @Tags         venues
// @Security     BearerAuth
// @Param        id  path  string  true  "Venue id"
// @Success      204
// @Failure      404 {object}  map[string]string
// @Router       /v1/venues/{id} [delete]
func (h *VenueHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteVenue(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
