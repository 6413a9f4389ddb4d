package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"vibecart/domain"
)

type fakeCartRepo struct {
	items []domain.CartItem
}

func (f *fakeCartRepo) FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Upsert(ctx context.Context, item *domain.CartItem) error { return nil }

func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, id, userID uint, quantity int) error {
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id, userID uint) error { return nil }

func (f *fakeCartRepo) DeleteByUser(ctx context.Context, userID uint) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

// fakeOrdersRepo emulates the transactional create-and-clear: the order is
// stored and the cart rows vanish together.
type fakeOrdersRepo struct {
	orders   []domain.Order
	cartRepo *fakeCartRepo
	nextID   uint
	failNext bool
}

func (f *fakeOrdersRepo) CreateWithCartClear(ctx context.Context, order *domain.Order) error {
	if f.failNext {
		return errors.New("storage failure")
	}
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return f.cartRepo.DeleteByUser(ctx, order.UserID)
}

func (f *fakeOrdersRepo) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	out := []domain.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].UserID == userID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendEmail(toName, toEmail, subject, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func seededCart() *fakeCartRepo {
	// Product A: $10 x2, product B: $5 x1 -> total 25.00
	return &fakeCartRepo{items: []domain.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Quantity: 2, Product: domain.Product{ID: 10, Name: "Product A", Price: 10.00, Image: "a.jpg"}},
		{ID: 2, UserID: 1, ProductID: 20, Quantity: 1, Product: domain.Product{ID: 20, Name: "Product B", Price: 5.00, Image: "b.jpg"}},
	}}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	cartRepo := &fakeCartRepo{}
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo}
	svc := NewCheckoutService(ordersRepo, cartRepo, &fakeNotifier{})

	_, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev")
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if len(ordersRepo.orders) != 0 {
		t.Errorf("empty-cart checkout created %d orders", len(ordersRepo.orders))
	}
}

func TestCreateOrder_SnapshotAndTotal(t *testing.T) {
	cartRepo := seededCart()
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo}
	notifier := &fakeNotifier{}
	svc := NewCheckoutService(ordersRepo, cartRepo, notifier)

	order, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev")
	if err != nil {
		t.Fatal(err)
	}

	if order.Total != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(order.Items))
	}
	if order.Status != domain.OrderStatusCompleted {
		t.Errorf("expected status completed, got %q", order.Status)
	}
	if order.Number == "" {
		t.Error("expected a generated order number")
	}

	first := order.Items[0]
	if first.ProductID != 10 || first.Name != "Product A" || first.Price != 10.00 || first.Quantity != 2 || first.Image != "a.jpg" {
		t.Errorf("snapshot did not copy product fields: %+v", first)
	}

	// cart cleared together with the order commit
	remaining, _ := cartRepo.FindByUser(context.Background(), 1)
	if len(remaining) != 0 {
		t.Errorf("expected empty cart after checkout, got %d rows", len(remaining))
	}

	if len(notifier.sent) != 1 || notifier.sent[0] != "user@vibecart.dev" {
		t.Errorf("expected one confirmation email to the customer, got %v", notifier.sent)
	}
}

func TestCreateOrder_SnapshotSurvivesCatalogEdits(t *testing.T) {
	cartRepo := seededCart()
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo}
	svc := NewCheckoutService(ordersRepo, cartRepo, &fakeNotifier{})

	if _, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev"); err != nil {
		t.Fatal(err)
	}

	// a later price change must not reach the stored snapshot
	stored := ordersRepo.orders[0]
	if stored.Items[0].Price != 10.00 {
		t.Errorf("stored snapshot price %v, want 10.00", stored.Items[0].Price)
	}
}

func TestCreateOrder_StorageFailureLeavesCart(t *testing.T) {
	cartRepo := seededCart()
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo, failNext: true}
	svc := NewCheckoutService(ordersRepo, cartRepo, &fakeNotifier{})

	if _, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev"); err == nil {
		t.Fatal("expected error from failing storage")
	}

	remaining, _ := cartRepo.FindByUser(context.Background(), 1)
	if len(remaining) != 2 {
		t.Errorf("failed checkout must not clear the cart, %d rows left", len(remaining))
	}
}

func TestCreateOrder_EmailFailureDoesNotFailCheckout(t *testing.T) {
	cartRepo := seededCart()
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo}
	svc := NewCheckoutService(ordersRepo, cartRepo, &fakeNotifier{err: errors.New("mailer down")})

	order, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev")
	if err != nil {
		t.Fatalf("checkout failed on mailer error: %v", err)
	}
	if order.ID == 0 {
		t.Error("order was not persisted")
	}
}

func TestListOwnOrders_NewestFirst(t *testing.T) {
	cartRepo := seededCart()
	ordersRepo := &fakeOrdersRepo{cartRepo: cartRepo}
	svc := NewCheckoutService(ordersRepo, cartRepo, &fakeNotifier{})

	first, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev")
	if err != nil {
		t.Fatal(err)
	}

	cartRepo.items = seededCart().items
	second, err := svc.CreateOrder(context.Background(), 1, "John Doe", "user@vibecart.dev")
	if err != nil {
		t.Fatal(err)
	}

	orders, err := svc.ListOwnOrders(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("orders not newest-first: %d, %d", orders[0].ID, orders[1].ID)
	}
}
