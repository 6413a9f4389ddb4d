package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vibecart/domain"

	"github.com/labstack/echo/v4"
)

type stubOrdersService struct {
	orders []domain.AdminOrder
	order  domain.AdminOrder
	err    error

	gotStatus string
}

func (s *stubOrdersService) ListAllOrders(ctx context.Context) ([]domain.AdminOrder, error) {
	return s.orders, s.err
}

func (s *stubOrdersService) GetOrderByID(ctx context.Context, id uint) (domain.AdminOrder, error) {
	return s.order, s.err
}

func (s *stubOrdersService) SetStatus(ctx context.Context, id uint, status string) (domain.AdminOrder, error) {
	s.gotStatus = status
	return s.order, s.err
}

func newAdminRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))
	c.Set("role", domain.RoleAdmin)
	return c, rec
}

func TestAdminOrders_UpdateStatus(t *testing.T) {
	svc := &stubOrdersService{order: domain.AdminOrder{
		Order: domain.Order{ID: 1, Status: domain.OrderStatusCancelled},
	}}
	h := NewAdminOrdersHandler(svc)

	c, rec := newAdminRequest(http.MethodPut, "/api/v1/admin/orders/1", `{"status": "cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateOrderStatus(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotStatus != "cancelled" {
		t.Errorf("service called with status %q", svc.gotStatus)
	}
}

func TestAdminOrders_UpdateStatus_MissingStatus(t *testing.T) {
	h := NewAdminOrdersHandler(&stubOrdersService{})

	c, rec := newAdminRequest(http.MethodPut, "/api/v1/admin/orders/1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateOrderStatus(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminOrders_UpdateStatus_InvalidValueMapsTo400(t *testing.T) {
	h := NewAdminOrdersHandler(&stubOrdersService{err: domain.ErrInvalidStatus})

	c, rec := newAdminRequest(http.MethodPut, "/api/v1/admin/orders/1", `{"status": "shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateOrderStatus(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminOrders_GetOrderByID_NotFound(t *testing.T) {
	h := NewAdminOrdersHandler(&stubOrdersService{err: domain.ErrOrderNotFound})

	c, rec := newAdminRequest(http.MethodGet, "/api/v1/admin/orders/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.GetOrderByID(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdminOrders_GetAllOrders(t *testing.T) {
	h := NewAdminOrdersHandler(&stubOrdersService{orders: []domain.AdminOrder{
		{Order: domain.Order{ID: 1}, UserName: "John Doe", UserEmail: "user@vibecart.dev"},
	}})

	c, rec := newAdminRequest(http.MethodGet, "/api/v1/admin/orders", "")
	if err := h.GetAllOrders(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user_email":"user@vibecart.dev"`) {
		t.Errorf("listing missing user join: %s", rec.Body.String())
	}
}
