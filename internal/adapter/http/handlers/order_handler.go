package handlers

import (
	"net/http"

	request "controle_pedidos/internal/adapter/http/dto/request"
	response "controle_pedidos/internal/adapter/http/dto/response"
	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/usecase"
	"controle_pedidos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const ordersEventName = "orders"

var (
	errInvalidOrderPayload  = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for tracked orders (pedidos).
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Register an order
// @Description  Validates the order form and persists it with the initial status.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order form"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Debug("[order][handler] create invalid payload")
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToDraft(h.usecase.Schema()))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// ListOrders godoc
// @Summary      List orders
// @Description  All orders by creation time ascending, with line totals and the grand total.
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.OrderListResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// StreamOrders godoc
// @Summary      Live order list
// @Description  Server-Sent Events. Each "orders" event carries the full current list.
// @Tags         orders
// @Produce      text/event-stream
// @Success      200  {object}  response.OrderListResponse
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /orders/stream [get]
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	ctx := c.Request.Context()
	feed, err := h.usecase.Watch(ctx)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	log.Debug("[order][handler] stream opened")
	defer log.Debug("[order][handler] stream closed")

	for {
		select {
		case <-ctx.Done():
			return
		case orders, ok := <-feed:
			if !ok {
				return
			}
			c.SSEvent(ordersEventName, response.FromOrders(orders))
			c.Writer.Flush()
		}
	}
}

// ChangeStatus godoc
// @Summary      Change an order status
// @Description  Any configured status may follow any other.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Order ID"
// @Param        status  body      request.StatusRequest  true  "New status"
// @Success      200     {object}  response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// RemoveOrder godoc
// @Summary      Remove an order
// @Tags         orders
// @Param        id  path  string  true  "Order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) RemoveOrder(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSchema godoc
// @Summary      Order form schema
// @Description  Which fields the order form collects and the selectable statuses.
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.SchemaResponse
// @Router       /schema [get]
func (h *OrderHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSchema(h.usecase.Schema()))
}

func mapOrderError(err error) *pkg.AppError {
	var validationErr *aggregator.ValidationError
	var persistenceErr *usecase.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_ORDER", "Order form has invalid fields", err, http.StatusBadRequest).
			WithDetails(validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status is not one of the configured statuses", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotifierNotConfigured):
		return pkg.NewDomainErrorSimple("LIVE_FEED_UNAVAILABLE", "Live order feed is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &persistenceErr):
		log.WithError(err).WithField("op", persistenceErr.Op).Error("[order][handler] persistence failure")
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Order store is unavailable", err, http.StatusBadGateway)
	default:
		log.WithError(err).Error("[order][handler] unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
