package domain

import "time"

// CartItem is one cart line: a (user, product) pair with a quantity.
// The unique index makes "add to cart" an upsert instead of a
// read-modify-write, so concurrent adds cannot lose an increment.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is a cart item shaped for responses, with its derived line total.
type CartLine struct {
	ID        uint    `json:"id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"item_total"`
}

// Cart is the full cart view returned by every cart operation.
type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}
