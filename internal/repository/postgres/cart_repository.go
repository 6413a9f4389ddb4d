package postgres

import (
	"context"
	"fmt"

	"vibecart/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	return items, nil
}

// Upsert inserts the cart line or, when a row for (user_id, product_id)
// already exists, increments its quantity in a single statement. Keeping
// the increment inside the database closes the lost-update window of a
// find-then-save sequence under concurrent adds.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id, userID uint, quantity int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id, userID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}

// DeleteByUser clears the whole cart. Clearing an already empty cart is
// not an error.
func (r *CartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
