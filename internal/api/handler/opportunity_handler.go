package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

// OpportunityHandler handles partner opportunity postings.
type OpportunityHandler struct {
	service ports.OpportunityService
}

func NewOpportunityHandler(service ports.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{service: service}
}

type opportunityRequest struct {
	VenueID     string     `json:"venue_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type opportunityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed filled"`
}

// Create handles POST /v1/opportunities.
//
// @Summary      Post a partner opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      opportunityRequest  true  "Opportunity details"
// @Success      201   {object}  domain.Opportunity
// @Failure      403   {object}  map[string]string
// @Router       /v1/opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	opp, err := h.service.CreateOpportunity(c.Request().Context(), ports.OpportunityInput{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, opp)
}

// List handles GET /v1/opportunities. Anonymous callers see only open
// postings.
//
// @Summary      List opportunities
// @Tags         opportunities
// @Produce      json
// @Param        venue_id  query     string  false  "Filter by venue"
// @Success      200       {array}   domain.Opportunity
// @Router       /v1/opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	openOnly := true
	if user, err := ctxPrincipal(c); err == nil {
		openOnly = domain.RoleRank(user.Role) < domain.RoleRank(domain.RoleVenueAdmin)
	}

	opps, err := h.service.ListOpportunities(c.Request().Context(), c.QueryParam("venue_id"), openOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// Get handles GET /v1/opportunities/:id.
//
// @Summary      Get an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id  path      string  true  "Opportunity id"
// @Success      200 {object}  domain.Opportunity
// @Failure      404 {object}  map[string]string
// @Router       /v1/opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	opp, err := h.service.GetOpportunity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// SetStatus handles PATCH /v1/opportunities/:id/status.
//
// @Summary      Close or fill an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Opportunity id"
// @Param        body  body      opportunityStatusRequest  true  "Next status"
// @Success      200   {object}  domain.Opportunity
// @Failure      404   {object}  map[string]string
// @Router       /v1/opportunities/{id}/status [patch]
func (h *OpportunityHandler) SetStatus(c echo.Context) error {
	var req opportunityStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	opp, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), domain.OpportunityStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}
