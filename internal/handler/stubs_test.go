package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

// In-memory stand-ins for the pgx repositories, enough to drive the
// handlers through real services.

type stubProductStore struct {
	products map[string]*domain.Product
}

func newStubProductStore(products ...domain.Product) *stubProductStore {
	s := &stubProductStore{products: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *stubProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProductStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubProductStore) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Sizes != nil {
		p.Sizes = upd.Sizes
	}
	if upd.Colors != nil {
		p.Colors = upd.Colors
	}
	if upd.Images != nil {
		p.Images = upd.Images
	}
	if upd.Details != nil {
		p.Details = upd.Details
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.IsActive != nil {
		p.IsActive = *upd.IsActive
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (s *stubProductStore) DeleteProduct(ctx context.Context, id string) error {
	delete(s.products, id)
	return nil
}

func (s *stubProductStore) DeductStock(ctx context.Context, id string, quantity int) (int, error) {
	p, ok := s.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return p.Stock, nil
}

type stubOrderStore struct {
	orders map[string]*domain.Order
}

func newStubOrderStore(orders ...domain.Order) *stubOrderStore {
	s := &stubOrderStore{orders: make(map[string]*domain.Order)}
	for i := range orders {
		o := orders[i]
		s.orders[o.ID] = &o
	}
	return s
}

func (s *stubOrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	cp := *order
	s.orders[order.ID] = &cp
	return nil
}

func (s *stubOrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubOrderStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrderStore) UpdateOrder(ctx context.Context, id string, upd domain.OrderUpdate) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.PayPalOrderID != nil {
		o.PayPalOrderID = *upd.PayPalOrderID
	}
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (s *stubOrderStore) ClaimReconciliation(ctx context.Context, id string) (bool, error) {
	o, ok := s.orders[id]
	if !ok || o.Reconciled {
		return false, nil
	}
	o.Reconciled = true
	return true, nil
}

func denimJacket(stock int) domain.Product {
	return domain.Product{
		ID:          uuid.New().String(),
		Name:        "Raw Denim Jacket",
		Description: "Heavyweight selvedge",
		Price:       decimal.RequireFromString("45.00"),
		Stock:       stock,
		Sizes:       []string{"S", "M", "L"},
		Colors:      []domain.Color{{Name: "Indigo", BgColor: "#1f2a44"}},
		Category:    "denim",
		IsActive:    true,
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}
