package product

import (
	"context"
	"errors"
	"fmt"

	"vibecart/domain"
	"vibecart/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find product by id", err)
		return domain.Product{}, err
	}

	return product, nil
}

// GetCategories returns the distinct category names present in the
// catalog, for the storefront filter.
func (s *productService) GetCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		logger.Error("Invalid product data: name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created", "id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		return nil, errors.New("product ID is required")
	}

	if product.Name == "" {
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("Failed to update product", err)
		return nil, err
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("Failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	return &updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		return domain.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product", err)
		return err
	}

	logger.Info("product deleted", "id", id)

	return nil
}
