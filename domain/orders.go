package domain

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
// There is no transition graph: any status may move to any other.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Number        string      `gorm:"column:number;unique;not null" json:"number"`
	UserID        uint        `gorm:"column:user_id;not null;index" json:"user_id"`
	CustomerName  string      `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerEmail string      `gorm:"column:customer_email;not null" json:"customer_email"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total         float64     `gorm:"column:total;type:numeric;not null" json:"total"`
	Status        string      `gorm:"column:status;default:completed" json:"status"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is the by-value snapshot of a cart line taken at checkout.
// Name, price and image are copied from the product at that instant, so
// later catalog edits never change a past order.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint64   `gorm:"column:product_id;not null" json:"product_id"`
	Name      string   `gorm:"column:name;type:text" json:"name"`
	Price     float64  `gorm:"column:price;type:numeric" json:"price"`
	Quantity  int      `gorm:"column:quantity;not null" json:"quantity"`
	Image     string   `gorm:"column:image;type:text" json:"image"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// AdminOrder is an order joined with its owning user's name and email,
// as shown in the admin console.
type AdminOrder struct {
	Order
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
