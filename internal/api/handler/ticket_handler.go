package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/ports"
)

// TicketHandler handles ticket purchase, listing and redemption.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Purchase handles POST /v1/events/:id/tickets.
//
// @Summary      Purchase a ticket for an event
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Event id"
// @Success      201 {object}  domain.Ticket
// @Failure      404 {object}  map[string]string
// @Failure      409 {object}  map[string]string
// @Failure      422 {object}  map[string]string
// @Router       /v1/events/{id}/tickets [post]
func (h *TicketHandler) Purchase(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	ticket, err := h.service.PurchaseTicket(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

// ListMine handles GET /v1/tickets.
//
// @Summary      List own tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}   domain.Ticket
// @Router       /v1/tickets [get]
func (h *TicketHandler) ListMine(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tickets, err := h.service.ListUserTickets(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Redeem handles POST /v1/tickets/:code/redeem.
//
// @Summary      Redeem a ticket by code
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Ticket code"
// @Success      200   {object}  domain.Ticket
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/tickets/{code}/redeem [post]
func (h *TicketHandler) Redeem(c echo.Context) error {
	ticket, err := h.service.RedeemTicket(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}
