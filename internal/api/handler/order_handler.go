package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
)

// CatalogHandler handles concierge catalog management.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateItem handles POST /v1/catalog.
//
// @Summary      Create a catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      catalogItemRequest  true  "Item details"
// @Success      201   {object}  domain.CatalogItem
// @Failure      403   {object}  map[string]string
// @Router       /v1/catalog [post]
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /v1/catalog/:id.
//
// @Summary      Update a catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Item id"
// @Param        body  body      catalogItemRequest  true  "Item details"
// @Success      200   {object}  domain.CatalogItem
// @Failure      404   {object}  map[string]string
// @Router       /v1/catalog/{id} [put]
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.UpdateItem(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems handles GET /v1/venues/:id/catalog. Anonymous callers see only
// active items.
//
// @Summary      List a venue's catalog
// @Tags         catalog
// @Produce      json
// @Param        id  path      string  true  "Venue id"
// @Success      200 {array}   domain.CatalogItem
// @Router       /v1/venues/{id}/catalog [get]
func (h *CatalogHandler) ListItems(c echo.Context) error {
	activeOnly := true
	if user, err := ctxPrincipal(c); err == nil {
		activeOnly = domain.RoleRank(user.Role) < domain.RoleRank(domain.RoleVenueStaff)
	}

	items, err := h.service.ListItems(c.Request().Context(), c.Param("id"), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// OrderHandler handles concierge order placement and fulfilment.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Place handles POST /v1/orders.
//
// @Summary      Place a concierge order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order lines"
// @Success      201   {object}  domain.Order
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, ports.OrderLineInput{
			CatalogItemID: l.CatalogItemID,
			Quantity:      l.Quantity,
		})
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		VenueID: req.VenueID,
		UserID:  user.ID,
		Lines:   lines,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// ListMine handles GET /v1/orders.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}   domain.Order
// @Router       /v1/orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /v1/orders/:id. Customers may only read their own orders.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200 {object}  domain.Order
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	user, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if order.UserID != user.ID && domain.RoleRank(user.Role) < domain.RoleRank(domain.RoleVenueStaff) {
		return domain.ErrForbidden
	}
	return c.JSON(http.StatusOK, order)
}

// AdvanceStatus handles PATCH /v1/orders/:id/status.
//
// @Summary      Advance an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order id"
// @Param        body  body      advanceOrderRequest  true  "Next status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	var req advanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.AdvanceOrder(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
