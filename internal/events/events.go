package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

type OrderCreatedEvent struct {
	EventID       string            `json:"event_id"`
	OrderID       string            `json:"order_id"`
	CustomerEmail string            `json:"customer_email"`
	Total         decimal.Decimal   `json:"total"`
	Items         []domain.LineItem `json:"items"`
	Status        string            `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
	RequestID     string            `json:"request_id"`
}
