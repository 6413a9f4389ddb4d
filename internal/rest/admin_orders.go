package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vibecart/domain"
	"vibecart/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AdminOrdersService interface {
	ListAllOrders(ctx context.Context) ([]domain.AdminOrder, error)
	GetOrderByID(ctx context.Context, id uint) (domain.AdminOrder, error)
	SetStatus(ctx context.Context, id uint, status string) (domain.AdminOrder, error)
}

// AdminOrdersHandler serves the admin order console.
type AdminOrdersHandler struct {
	ordersService AdminOrdersService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewAdminOrdersHandler(ordersService AdminOrdersService) *AdminOrdersHandler {
	return &AdminOrdersHandler{
		ordersService: ordersService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminOrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.ListAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *AdminOrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrderByID(ctx, uint(orderID))
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, order)
}

func (h *AdminOrdersHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate order status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.SetStatus(ctx, uint(orderID), req.Status)
	if err != nil {
		logger.Error("Failed to update order status", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, order)
}
