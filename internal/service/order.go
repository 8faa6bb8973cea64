package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/events"
)

// EventPublisher publishes order lifecycle events. Publishing is
// best-effort; intake never fails because of it.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event events.OrderCreatedEvent) error
}

type OrderService struct {
	orders     OrderStore
	reconciler *InventoryReconciler
	publisher  EventPublisher
	logger     *zap.Logger
}

func NewOrderService(orders OrderStore, reconciler *InventoryReconciler, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:     orders,
		reconciler: reconciler,
		publisher:  publisher,
		logger:     logger,
	}
}

// CreateOrder persists a new order and deducts stock for its line items.
// The insert is the only hard failure point: if it fails nothing is
// stored and no stock is touched. Reconciliation and event publishing
// run after the order is committed and are logged, never surfaced.
//
// Intake is not idempotent: submitting the same payload twice creates
// two orders and deducts stock twice. The checkout client owns
// submit-once.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, requestID string) (*domain.Order, error) {
	subtotal := decimal.Zero
	for _, item := range req.Items {
		subtotal = subtotal.Add(item.Total())
	}
	if !subtotal.Equal(req.Subtotal) || !req.Total.Equal(subtotal.Add(req.Shipping)) {
		return nil, fmt.Errorf("%w: subtotal %s, shipping %s, total %s",
			domain.ErrTotalMismatch, req.Subtotal, req.Shipping, req.Total)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.New().String(),
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		CustomerState:   req.CustomerState,
		CustomerZip:     req.CustomerZip,
		CustomerPhone:   req.CustomerPhone,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Total:           req.Total,
		Status:          domain.OrderStatusPending,
		PayPalOrderID:   req.PayPalOrderID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.logger.Error("Failed to save order",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return nil, err
	}

	// The order is committed; everything below is best-effort.
	claimed, err := s.orders.ClaimReconciliation(ctx, order.ID)
	if err != nil {
		s.logger.Error("Failed to claim stock reconciliation",
			zap.String("order_id", order.ID),
			zap.Error(err))
	} else if claimed {
		order.Reconciled = true
		if err := s.reconciler.Reconcile(ctx, order.Items); err != nil {
			s.logger.Error("Stock reconciliation incomplete",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	if s.publisher != nil {
		event := events.OrderCreatedEvent{
			EventID:       uuid.New().String(),
			OrderID:       order.ID,
			CustomerEmail: order.CustomerEmail,
			Total:         order.Total,
			Items:         order.Items,
			Status:        string(order.Status),
			Timestamp:     time.Now().UTC(),
			RequestID:     requestID,
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Error("Failed to publish order event",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail),
		zap.String("total", order.Total.StringFixed(2)))

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

// UpdateOrder applies a sparse patch. Status changes are validated
// against the order lifecycle before anything is written.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, upd domain.OrderUpdate) (*domain.Order, error) {
	if upd.Status != nil {
		next := *upd.Status
		if !next.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, next)
		}
		current, err := s.orders.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
		}
	}

	order, err := s.orders.UpdateOrder(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		s.logger.Info("Order status updated",
			zap.String("order_id", id),
			zap.String("status", string(*upd.Status)))
	}
	return order, nil
}
