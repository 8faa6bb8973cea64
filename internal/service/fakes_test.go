package service

import (
	"context"
	"sync"
	"time"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

type fakeProductStore struct {
	mu         sync.Mutex
	products   map[string]*domain.Product
	deductErr  map[string]error
	deductions []string
}

func newFakeProductStore(products ...domain.Product) *fakeProductStore {
	f := &fakeProductStore{
		products:  make(map[string]*domain.Product),
		deductErr: make(map[string]error),
	}
	for i := range products {
		p := products[i]
		f.products[p.ID] = &p
	}
	return f
}

func (f *fakeProductStore) stock(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id].Stock
}

func (f *fakeProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
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

func (f *fakeProductStore) DeleteProduct(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) DeductStock(ctx context.Context, id string, quantity int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.deductErr[id]; err != nil {
		return 0, err
	}
	p, ok := f.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	f.deductions = append(f.deductions, id)
	return p.Stock, nil
}

type fakeOrderStore struct {
	mu        sync.Mutex
	orders    map[string]*domain.Order
	createErr error
	claimErr  error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderStore) put(order domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[order.ID] = &order
}

func (f *fakeOrderStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) UpdateOrder(ctx context.Context, id string, upd domain.OrderUpdate) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if upd.CustomerEmail != nil {
		o.CustomerEmail = *upd.CustomerEmail
	}
	if upd.CustomerName != nil {
		o.CustomerName = *upd.CustomerName
	}
	if upd.CustomerAddress != nil {
		o.CustomerAddress = *upd.CustomerAddress
	}
	if upd.CustomerCity != nil {
		o.CustomerCity = *upd.CustomerCity
	}
	if upd.CustomerState != nil {
		o.CustomerState = *upd.CustomerState
	}
	if upd.CustomerZip != nil {
		o.CustomerZip = *upd.CustomerZip
	}
	if upd.CustomerPhone != nil {
		o.CustomerPhone = *upd.CustomerPhone
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

func (f *fakeOrderStore) ClaimReconciliation(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.claimErr != nil {
		return false, f.claimErr
	}
	o, ok := f.orders[id]
	if !ok || o.Reconciled {
		return false, nil
	}
	o.Reconciled = true
	return true, nil
}
