package rest

import (
	"context"
	"net/http"
	"time"

	"vibecart/domain"
	"vibecart/pkg/logger"
	"vibecart/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutService interface {
	CreateOrder(ctx context.Context, userID uint, customerName, customerEmail string) (domain.Order, error)
	ListOwnOrders(ctx context.Context, userID uint) ([]domain.Order, error)
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCheckoutHandler(checkoutService CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

type CheckoutResponse struct {
	OrderID       uint               `json:"order_id"`
	Number        string             `json:"number"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []domain.OrderItem `json:"items"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	Timestamp     time.Time          `json:"timestamp"`
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate checkout request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	order, err := h.checkoutService.CreateOrder(ctx, userID, req.CustomerName, req.CustomerEmail)
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	metrics.OrdersCreated.Inc()

	return c.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:       order.ID,
		Number:        order.Number,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		Total:         order.Total,
		Status:        order.Status,
		Timestamp:     order.CreatedAt,
	})
}

func (h *CheckoutHandler) GetOwnOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.checkoutService.ListOwnOrders(ctx, userID)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, orders)
}
