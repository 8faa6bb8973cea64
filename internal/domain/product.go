package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Color is one selectable product color with its swatch value for the storefront.
type Color struct {
	Name    string `json:"name"`
	BgColor string `json:"bgColor"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Sizes       []string        `json:"sizes"`
	Colors      []Color         `json:"colors"`
	Images      []string        `json:"images"`
	Details     []string        `json:"details"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductUpdate is a sparse patch. Nil pointers and nil slices mean
// "leave unchanged"; the updated-timestamp is always refreshed.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Sizes       []string         `json:"sizes"`
	Colors      []Color          `json:"colors"`
	Images      []string         `json:"images"`
	Details     []string         `json:"details"`
	Category    *string          `json:"category"`
	IsActive    *bool            `json:"isActive"`
}
