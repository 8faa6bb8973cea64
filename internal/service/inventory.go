package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

// InventoryReconciler decrements product stock to reflect a completed
// purchase. It is best-effort per line item: unknown products are
// skipped, a failing item does not stop the remaining items, and nothing
// already written is rolled back.
type InventoryReconciler struct {
	products ProductStore
	logger   *zap.Logger
}

func NewInventoryReconciler(products ProductStore, logger *zap.Logger) *InventoryReconciler {
	return &InventoryReconciler{
		products: products,
		logger:   logger,
	}
}

// Reconcile deducts stock for each line item. The returned error joins
// the per-item persistence failures; callers treat it as diagnostic and
// never roll back the order it belongs to.
func (r *InventoryReconciler) Reconcile(ctx context.Context, items []domain.LineItem) error {
	var errs []error
	for _, item := range items {
		newStock, err := r.products.DeductStock(ctx, item.ProductID, item.Quantity)
		if errors.Is(err, domain.ErrProductNotFound) {
			r.logger.Warn("Skipping stock deduction for unknown product",
				zap.String("product_id", item.ProductID))
			continue
		}
		if err != nil {
			r.logger.Error("Failed to deduct stock",
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("product %s: %w", item.ProductID, err))
			continue
		}

		r.logger.Info("Stock deducted",
			zap.String("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
			zap.Int("new_stock", newStock))
	}
	return errors.Join(errs...)
}
