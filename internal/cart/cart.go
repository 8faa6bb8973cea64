// Package cart holds the server-side shopping cart. State lives behind
// the Storage interface (in-memory or redis) instead of being shared
// global state touched by every page.
package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemNotFound    = errors.New("item not in cart")
)

// Item is one product variant in a cart. Two items are the same variant
// when product, size and color all match.
type Item struct {
	ProductID string          `json:"productId" binding:"required"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
}

func (i Item) sameVariant(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

type Cart struct {
	Items    []Item          `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Storage persists the items of one cart keyed by cart id. Load returns
// an empty slice for an unknown cart.
type Storage interface {
	Load(ctx context.Context, cartID string) ([]Item, error)
	Save(ctx context.Context, cartID string, items []Item) error
	Delete(ctx context.Context, cartID string) error
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) Get(ctx context.Context, cartID string) (*Cart, error) {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// Add puts an item in the cart, merging with an existing entry for the
// same variant. A zero quantity counts as one.
func (s *Service) Add(ctx context.Context, cartID string, item Item) (*Cart, error) {
	if item.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for idx := range items {
		if items[idx].sameVariant(item.ProductID, item.Size, item.Color) {
			items[idx].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.storage.Save(ctx, cartID, items); err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// UpdateQuantity sets the quantity for one variant. Quantities below one
// are rejected; removal is explicit via Remove.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID, size, color string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	found := false
	for idx := range items {
		if items[idx].sameVariant(productID, size, color) {
			items[idx].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.storage.Save(ctx, cartID, items); err != nil {
		return nil, err
	}
	return summarize(items), nil
}

func (s *Service) Remove(ctx context.Context, cartID, productID, size, color string) (*Cart, error) {
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if !item.sameVariant(productID, size, color) {
			kept = append(kept, item)
		}
	}

	if err := s.storage.Save(ctx, cartID, kept); err != nil {
		return nil, err
	}
	return summarize(kept), nil
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.storage.Delete(ctx, cartID)
}

func summarize(items []Item) *Cart {
	c := &Cart{
		Items:    items,
		Subtotal: decimal.Zero,
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	for _, item := range items {
		c.Count += item.Quantity
		c.Subtotal = c.Subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return c
}
