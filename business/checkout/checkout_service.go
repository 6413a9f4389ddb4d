package checkout

import (
	"context"
	"fmt"

	"vibecart/business/cart"
	"vibecart/domain"
	"vibecart/pkg/logger"

	"github.com/google/uuid"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateWithCartClear(ctx context.Context, order *domain.Order) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) error
}

const (
	SubjectOrderConfirmed = "Your order is confirmed!"
	EmailBodyOrderReceipt = `Hi %v, thanks for your order!</br></br>Order %v</br>Total: $%.2f</br></br>We'll let you know when it ships.`
)

type checkoutService struct {
	ordersRepo OrdersRepository
	cartRepo   cart.CartRepository
	notifRepo  NotificationRepository
}

func NewCheckoutService(ordersRepo OrdersRepository, cartRepo cart.CartRepository, notifRepo NotificationRepository) *checkoutService {
	return &checkoutService{
		ordersRepo: ordersRepo,
		cartRepo:   cartRepo,
		notifRepo:  notifRepo,
	}
}

// CreateOrder turns the current cart into an immutable order. Item name,
// price and image are copied by value from the product rows at this
// instant, so later catalog edits never touch the order. The order insert
// and the cart clear run in one transaction.
func (s *checkoutService) CreateOrder(ctx context.Context, userID uint, customerName, customerEmail string) (domain.Order, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return domain.Order{}, err
	}

	if len(items) == 0 {
		return domain.Order{}, domain.ErrCartEmpty
	}

	var total float64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID == 0 {
			return domain.Order{}, fmt.Errorf("cart item %d references missing product %d", item.ID, item.ProductID)
		}

		total += item.Product.Price * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     item.Product.Image,
		})
	}

	order := domain.Order{
		Number:        uuid.NewString(),
		UserID:        userID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         orderItems,
		Total:         total,
		Status:        domain.OrderStatusCompleted,
	}

	if err := s.ordersRepo.CreateWithCartClear(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	// best effort, a failed receipt never fails the checkout
	err = s.notifRepo.SendEmail(customerName, customerEmail, SubjectOrderConfirmed,
		fmt.Sprintf(EmailBodyOrderReceipt, customerName, order.Number, order.Total))
	if err != nil {
		logger.Warn("Failed to send order confirmation email", err)
	}

	return order, nil
}

// ListOwnOrders returns the user's orders, newest first.
func (s *checkoutService) ListOwnOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.ordersRepo.FindByUser(ctx, userID)
}
