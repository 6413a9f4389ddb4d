package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vibecart/domain"
	"vibecart/pkg/logger"
	"vibecart/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CartService interface {
	GetCart(ctx context.Context, userID uint) (domain.Cart, error)
	AddItem(ctx context.Context, userID uint, productID uint64, quantity int) (domain.Cart, error)
	UpdateItem(ctx context.Context, userID, cartItemID uint, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, cartItemID uint) (domain.Cart, error)
	ClearCart(ctx context.Context, userID uint) error
}

type CartHandler struct {
	cartService CartService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Qty       int    `json:"qty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
	Qty      int `json:"qty"`
}

// quantity and qty are interchangeable on the wire; quantity wins when
// both are present.
func pickQuantity(quantity, qty, fallback int) int {
	if quantity != 0 {
		return quantity
	}
	if qty != 0 {
		return qty
	}
	return fallback
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate add cart item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.AddItem(ctx, userID, req.ProductID, pickQuantity(req.Quantity, req.Qty, 1))
	if err != nil {
		logger.Error("Failed to add cart item", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("add").Inc()

	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	cartItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart item id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.UpdateItem(ctx, userID, uint(cartItemID), pickQuantity(req.Quantity, req.Qty, 0))
	if err != nil {
		logger.Error("Failed to update cart item", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	cartItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.RemoveItem(ctx, userID, uint(cartItemID))
	if err != nil {
		logger.Error("Failed to remove cart item", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.ClearCart(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("clear").Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Cart cleared",
	})
}
