package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusTransitions is the allowed order lifecycle. Delivered and
// cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItem is a purchased product variant embedded in an order. Name,
// image and price are snapshots taken at order time and do not track
// later product edits.
type LineItem struct {
	ProductID    string          `json:"productId" binding:"required"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	Quantity     int             `json:"quantity" binding:"required,gt=0"`
	Price        decimal.Decimal `json:"price"`
}

// Total is the line total, price times quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Order struct {
	ID              string          `json:"id"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress string          `json:"customerAddress"`
	CustomerCity    string          `json:"customerCity"`
	CustomerState   string          `json:"customerState"`
	CustomerZip     string          `json:"customerZip"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	PayPalOrderID   string          `json:"paypalOrderId,omitempty"`
	Reconciled      bool            `json:"reconciled"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CreateOrderRequest struct {
	CustomerEmail   string          `json:"customerEmail" binding:"required,email"`
	CustomerName    string          `json:"customerName" binding:"required"`
	CustomerAddress string          `json:"customerAddress" binding:"required"`
	CustomerCity    string          `json:"customerCity" binding:"required"`
	CustomerState   string          `json:"customerState" binding:"required"`
	CustomerZip     string          `json:"customerZip" binding:"required"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []LineItem      `json:"items" binding:"required,min=1,dive"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	PayPalOrderID   string          `json:"paypalOrderId"`
}

// OrderUpdate is a sparse patch; nil means "leave unchanged". Items and
// amounts are deliberately absent: an order is a historical record and
// its contents are immutable after intake.
type OrderUpdate struct {
	CustomerEmail   *string      `json:"customerEmail"`
	CustomerName    *string      `json:"customerName"`
	CustomerAddress *string      `json:"customerAddress"`
	CustomerCity    *string      `json:"customerCity"`
	CustomerState   *string      `json:"customerState"`
	CustomerZip     *string      `json:"customerZip"`
	CustomerPhone   *string      `json:"customerPhone"`
	Status          *OrderStatus `json:"status"`
	PayPalOrderID   *string      `json:"paypalOrderId"`
}
