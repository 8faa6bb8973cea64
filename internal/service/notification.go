package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/mail"
)

// NotificationService sends the two post-purchase emails and, when the
// order has not been reconciled yet, deducts stock first. Every step is
// best-effort: email delivery must never block or reverse a completed
// purchase.
type NotificationService struct {
	orders     OrderStore
	reconciler *InventoryReconciler
	sender     mail.Sender
	from       string
	storeEmail string
	logger     *zap.Logger
}

func NewNotificationService(orders OrderStore, reconciler *InventoryReconciler, sender mail.Sender, from, storeEmail string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		orders:     orders,
		reconciler: reconciler,
		sender:     sender,
		from:       from,
		storeEmail: storeEmail,
		logger:     logger,
	}
}

type DispatchResult struct {
	Reconciled        bool `json:"reconciled"`
	CustomerEmailSent bool `json:"customerEmailSent"`
	StoreEmailSent    bool `json:"storeEmailSent"`
}

// Dispatch reconciles stock at most once per order (the reconciliation
// claim guards against the intake path having already done it) and then
// sends the customer receipt and the store alert.
func (s *NotificationService) Dispatch(ctx context.Context, order domain.Order) DispatchResult {
	var res DispatchResult

	if order.ID != "" {
		claimed, err := s.orders.ClaimReconciliation(ctx, order.ID)
		switch {
		case err != nil:
			s.logger.Error("Failed to claim stock reconciliation",
				zap.String("order_id", order.ID),
				zap.Error(err))
		case claimed:
			res.Reconciled = true
			if err := s.reconciler.Reconcile(ctx, order.Items); err != nil {
				s.logger.Error("Stock reconciliation incomplete",
					zap.String("order_id", order.ID),
					zap.Error(err))
			}
		default:
			s.logger.Info("Order already reconciled, skipping stock deduction",
				zap.String("order_id", order.ID))
		}
	}

	res.CustomerEmailSent = s.send(ctx, order.CustomerEmail,
		"Your Penjulum Order Confirmation", order, mail.RenderCustomerReceipt)
	res.StoreEmailSent = s.send(ctx, s.storeEmail,
		"New Penjulum Order - $"+order.Total.StringFixed(2), order, mail.RenderStoreAlert)

	return res
}

func (s *NotificationService) send(ctx context.Context, to, subject string, order domain.Order, render func(domain.Order) (string, error)) bool {
	html, err := render(order)
	if err != nil {
		s.logger.Error("Failed to render email",
			zap.String("to", to),
			zap.Error(err))
		return false
	}

	err = s.sender.Send(ctx, mail.Message{
		From:    s.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.Error(err))
		return false
	}

	s.logger.Info("Email sent", zap.String("to", to))
	return true
}
