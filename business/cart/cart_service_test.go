package cart

import (
	"context"
	"errors"
	"testing"

	"vibecart/domain"
)

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

// fakeCartRepo mimics the postgres repository including the upsert
// increment and the ownership checks.
type fakeCartRepo struct {
	items    []domain.CartItem
	nextID   uint
	products *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{nextID: 1, products: products}
}

func (f *fakeCartRepo) FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, item := range f.items {
		if item.UserID != userID {
			continue
		}
		item.Product = f.products.products[item.ProductID]
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeCartRepo) Upsert(ctx context.Context, item *domain.CartItem) error {
	for i := range f.items {
		if f.items[i].UserID == item.UserID && f.items[i].ProductID == item.ProductID {
			f.items[i].Quantity += item.Quantity
			return nil
		}
	}
	item.ID = f.nextID
	f.nextID++
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, id, userID uint, quantity int) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrCartItemNotFound
}

func (f *fakeCartRepo) Delete(ctx context.Context, id, userID uint) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCartItemNotFound
}

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

func newTestService() (*cartService, *fakeCartRepo, *fakeProductRepo) {
	products := &fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, Name: "Wireless Headphones", Price: 10.00, Category: "Electronics"},
		2: {ID: 2, Name: "Yoga Mat", Price: 5.00, Category: "Fitness"},
	}}
	cartRepo := newFakeCartRepo(products)
	return NewCartService(cartRepo, products), cartRepo, products
}

func TestAddItem_QuantitiesAreAdditive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	quantities := []int{2, 3, 1}
	var want int
	var cart domain.Cart
	var err error
	for _, q := range quantities {
		want += q
		cart, err = svc.AddItem(ctx, 1, 1, q)
		if err != nil {
			t.Fatalf("AddItem(%d) returned error: %v", q, err)
		}
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected a single cart line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != want {
		t.Errorf("expected quantity %d, got %d", want, cart.Items[0].Quantity)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.AddItem(context.Background(), 1, 999, 1)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("expected no cart rows, got %d", len(repo.items))
	}
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newTestService()

	for _, q := range []int{0, -3} {
		if _, err := svc.AddItem(context.Background(), 1, 1, q); !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("AddItem quantity=%d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}

func TestGetCart_TotalIsSumOfLineTotals(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Product 1 at $10 x2, product 2 at $5 x1
	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(ctx, 1, 2, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.GetCart(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}

	if cart.Total != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", cart.Total)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].ItemTotal != 20.00 {
		t.Errorf("expected first line total 20.00, got %.2f", cart.Items[0].ItemTotal)
	}
}

func TestGetCart_EmptyCart(t *testing.T) {
	svc, _, _ := newTestService()

	cart, err := svc.GetCart(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Total != 0 || len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", cart)
	}
}

func TestUpdateItem_SetsNotIncrements(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.UpdateItem(ctx, 1, repo.items[0].ID, 5)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateItem(ctx, 1, repo.items[0].ID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if repo.items[0].Quantity != 2 {
		t.Errorf("quantity mutated to %d on rejected update", repo.items[0].Quantity)
	}
}

func TestUpdateItem_OtherUsersLine(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateItem(ctx, 2, repo.items[0].ID, 7); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if repo.items[0].Quantity != 2 {
		t.Errorf("another user's update mutated the row: quantity=%d", repo.items[0].Quantity)
	}
}

func TestRemoveItem_OtherUsersLine(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RemoveItem(ctx, 2, repo.items[0].ID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Errorf("another user's remove deleted the row")
	}
}

func TestRemoveItem_RecomputesCart(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(ctx, 1, 2, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.RemoveItem(ctx, 1, repo.items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 remaining line, got %d", len(cart.Items))
	}
	if cart.Total != 5.00 {
		t.Errorf("expected total 5.00, got %.2f", cart.Total)
	}
}

func TestClearCart_AlwaysSucceeds(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// already empty
	if err := svc.ClearCart(ctx, 1); err != nil {
		t.Fatalf("clearing an empty cart returned error: %v", err)
	}

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.ClearCart(ctx, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.GetCart(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart after clear, got %d lines", len(cart.Items))
	}
}

func TestGetCart_MissingProductSurfacesError(t *testing.T) {
	svc, _, products := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	// catalog row deleted out from under the cart line
	delete(products.products, 1)

	if _, err := svc.GetCart(ctx, 1); err == nil {
		t.Fatal("expected error for cart line with missing product")
	}
}
