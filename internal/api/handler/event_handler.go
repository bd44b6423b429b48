package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

// EventHandler handles event CRUD under venues.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type eventRequest struct {
	VenueID        string    `json:"venue_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description"`
	Status         string    `json:"status" validate:"omitempty,oneof=draft published cancelled"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required"`
	BasePriceCents int64     `json:"base_price_cents" validate:"gte=0"`
	TicketCapacity int       `json:"ticket_capacity" validate:"gte=0"`
}

func (r eventRequest) toInput() ports.EventInput {
	status := domain.EventStatus(r.Status)
	if r.Status == "" {
		status = domain.EventDraft
	}
	return ports.EventInput{
		VenueID:        r.VenueID,
		Name:           r.Name,
		Description:    r.Description,
		Status:         status,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		BasePriceCents: r.BasePriceCents,
		TicketCapacity: r.TicketCapacity,
	}
}

// Create handles POST /v1/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.CreateEvent(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Get handles GET /v1/events/:id.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id  path      string  true  "Event id"
// @Success      200 {object}  domain.Event
// @Failure      404 {object}  map[string]string
// @Router       /v1/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// ListByVenue handles GET /v1/venues/:id/events. Anonymous callers see only
// published events; authenticated staff see everything.
//
// @Summary      List a venue's events
// @Tags         events
// @Produce      json
// @Param        id  path      string  true  "Venue id"
// @Success      200 {array}   domain.Event
// @Router       /v1/venues/{id}/events [get]
func (h *EventHandler) ListByVenue(c echo.Context) error {
	publishedOnly := true
	if user, err := ctxPrincipal(c); err == nil {
		publishedOnly = domain.RoleRank(user.Role) < domain.RoleRank(domain.RoleVenueStaff)
	}

	events, err := h.service.ListEvents(c.Request().Context(), c.Param("id"), publishedOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Update handles PUT /v1/events/:id.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Event id"
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  domain.Event
// @Failure      404   {object}  map[string]string
// @Router       /v1/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.UpdateEvent(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}
