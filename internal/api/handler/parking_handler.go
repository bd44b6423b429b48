package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/ports"
)

// ParkingHandler handles parking lots and sessions.
type ParkingHandler struct {
	service ports.ParkingService
}

func NewParkingHandler(service ports.ParkingService) *ParkingHandler {
	return &ParkingHandler{service: service}
}

type parkingLotRequest struct {
	VenueID string `json:"venue_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Spaces  int    `json:"spaces" validate:"gt=0"`
}

type openSessionRequest struct {
	LotID       string `json:"lot_id" validate:"required"`
	PlateNumber string `json:"plate_number" validate:"required"`
}

// CreateLot handles POST /v1/parking/lots.
//
// @Summary      Create a parking lot
// @Tags         parking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      parkingLotRequest  true  "Lot details"
// @Success      201   {object}  domain.ParkingLot
// @Failure      403   {object}  map[string]string
// @Router       /v1/parking/lots [post]
func (h *ParkingHandler) CreateLot(c echo.Context) error {
	var req parkingLotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lot, err := h.service.CreateLot(c.Request().Context(), ports.ParkingLotInput{
		VenueID: req.VenueID,
		Name:    req.Name,
		Spaces:  req.Spaces,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lot)
}

// UpdateLot handles PUT /v1/parking/lots/:id.
//
// @Summary      Update a parking lot
// @Tags         parking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lot id"
// @Param        body  body      parkingLotRequest  true  "Lot details"
// @Success      200   {object}  domain.ParkingLot
// @Failure      404   {object}  map[string]string
// @Router       /v1/parking/lots/{id} [put]
func (h *ParkingHandler) UpdateLot(c echo.Context) error {
	var req parkingLotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lot, err := h.service.UpdateLot(c.Request().Context(), c.Param("id"), ports.ParkingLotInput{
		VenueID: req.VenueID,
		Name:    req.Name,
		Spaces:  req.Spaces,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lot)
}

// ListLots handles GET /v1/venues/:id/parking.
//
// @Summary      List a venue's parking lots
// @Tags         parking
// @Produce      json
// @Param        id  path      string  true  "Venue id"
// @Success      200 {array}   domain.ParkingLot
// @Router       /v1/venues/{id}/parking [get]
func (h *ParkingHandler) ListLots(c echo.Context) error {
	lots, err := h.service.ListLots(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lots)
}

// OpenSession handles POST /v1/parking/sessions.
//
// @Summary      Open a parking session
// @Tags         parking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      openSessionRequest  true  "Session details"
// @Success      201   {object}  domain.ParkingSession
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/parking/sessions [post]
func (h *ParkingHandler) OpenSession(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req openSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.service.OpenSession(c.Request().Context(), req.LotID, user.ID, req.PlateNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

// CloseSession handles POST /v1/parking/sessions/:id/close.
//
// @Summary      Close a parking session
// @Tags         parking
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Session id"
// @Success      200 {object}  domain.ParkingSession
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Failure      409 {object}  map[string]string
// @Router       /v1/parking/sessions/{id}/close [post]
func (h *ParkingHandler) CloseSession(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	session, err := h.service.CloseSession(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// ListOpenSessions handles GET /v1/parking/lots/:id/sessions.
//
// @Summary      List open sessions in a lot
// @Tags         parking
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Lot id"
// @Success      200 {array}   domain.ParkingSession
// @Router       /v1/parking/lots/{id}/sessions [get]
func (h *ParkingHandler) ListOpenSessions(c echo.Context) error {
	sessions, err := h.service.ListOpenSessions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}
