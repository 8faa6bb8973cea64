package service

import (
	"context"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

// ProductStore is the catalog persistence the services depend on,
// implemented by repository.ProductRepository.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DeductStock(ctx context.Context, id string, quantity int) (int, error)
}

// OrderStore is the order persistence the services depend on,
// implemented by repository.OrderRepository.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	UpdateOrder(ctx context.Context, id string, upd domain.OrderUpdate) (*domain.Order, error)
	ClaimReconciliation(ctx context.Context, id string) (bool, error)
}
