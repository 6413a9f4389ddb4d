package cart

import (
	"context"
	"fmt"

	"vibecart/business/product"
	"vibecart/domain"
)

// CartRepository contract interface
type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error)
	Upsert(ctx context.Context, item *domain.CartItem) error
	UpdateQuantity(ctx context.Context, id, userID uint, quantity int) error
	Delete(ctx context.Context, id, userID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    CartRepository
	productRepo product.ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo product.ProductRepository) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart lines in insertion order, each with its
// derived line total, plus the grand total.
func (s *cartService) GetCart(ctx context.Context, userID uint) (domain.Cart, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart := domain.Cart{Items: []domain.CartLine{}}
	for _, item := range items {
		if item.Product.ID == 0 {
			return domain.Cart{}, fmt.Errorf("cart item %d references missing product %d", item.ID, item.ProductID)
		}

		itemTotal := item.Product.Price * float64(item.Quantity)
		cart.Items = append(cart.Items, domain.CartLine{
			ID:        item.ID,
			Product:   item.Product,
			Quantity:  item.Quantity,
			ItemTotal: itemTotal,
		})
		cart.Total += itemTotal
	}

	return cart, nil
}

// AddItem adds quantity of a product to the cart. Adding a product that is
// already in the cart increments the existing line.
func (s *cartService) AddItem(ctx context.Context, userID uint, productID uint64, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return domain.Cart{}, err
	}

	err := s.cartRepo.Upsert(ctx, &domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return domain.Cart{}, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateItem sets (not increments) the quantity of an owned cart line.
func (s *cartService) UpdateItem(ctx context.Context, userID, cartItemID uint, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	if err := s.cartRepo.UpdateQuantity(ctx, cartItemID, userID, quantity); err != nil {
		return domain.Cart{}, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, cartItemID uint) (domain.Cart, error) {
	if err := s.cartRepo.Delete(ctx, cartItemID, userID); err != nil {
		return domain.Cart{}, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	return s.cartRepo.DeleteByUser(ctx, userID)
}
