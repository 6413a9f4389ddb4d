package orders

import (
	"context"

	"vibecart/domain"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// OrdersService serves the admin order console: cross-user listings and
// status changes.
type OrdersService struct {
	ordersRepo OrdersRepository
}

func NewOrdersService(ordersRepo OrdersRepository) *OrdersService {
	return &OrdersService{
		ordersRepo: ordersRepo,
	}
}

func (s *OrdersService) ListAllOrders(ctx context.Context) ([]domain.AdminOrder, error) {
	orders, err := s.ordersRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AdminOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, withUser(o))
	}

	return out, nil
}

func (s *OrdersService) GetOrderByID(ctx context.Context, id uint) (domain.AdminOrder, error) {
	order, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		return domain.AdminOrder{}, err
	}

	return withUser(order), nil
}

// SetStatus moves an order to any of the known statuses. There is no
// transition graph: a cancelled order may be re-opened.
func (s *OrdersService) SetStatus(ctx context.Context, id uint, status string) (domain.AdminOrder, error) {
	if !domain.ValidOrderStatus(status) {
		return domain.AdminOrder{}, domain.ErrInvalidStatus
	}

	if err := s.ordersRepo.UpdateStatus(ctx, id, status); err != nil {
		return domain.AdminOrder{}, err
	}

	order, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		return domain.AdminOrder{}, err
	}

	return withUser(order), nil
}

func withUser(o domain.Order) domain.AdminOrder {
	return domain.AdminOrder{
		Order:     o,
		UserName:  o.User.Name,
		UserEmail: o.User.Email,
	}
}
