package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

const orderColumns = `id, customer_email, customer_name, customer_address, customer_city,
	customer_state, customer_zip, COALESCE(customer_phone, ''), items, subtotal,
	COALESCE(shipping, 0), total, COALESCE(status, 'pending'),
	COALESCE(paypal_order_id, ''), reconciled, created_at, updated_at`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var items []byte

	err := row.Scan(&o.ID, &o.CustomerEmail, &o.CustomerName, &o.CustomerAddress,
		&o.CustomerCity, &o.CustomerState, &o.CustomerZip, &o.CustomerPhone,
		&items, &o.Subtotal, &o.Shipping, &o.Total, &o.Status, &o.PayPalOrderID,
		&o.Reconciled, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order %s items: %w", o.ID, err)
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO orders (id, customer_email, customer_name, customer_address,
			customer_city, customer_state, customer_zip, customer_phone, items,
			subtotal, shipping, total, status, paypal_order_id, reconciled,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12, $13, $14, $15, $16, $17)`,
		order.ID, order.CustomerEmail, order.CustomerName, order.CustomerAddress,
		order.CustomerCity, order.CustomerState, order.CustomerZip, order.CustomerPhone,
		string(items), order.Subtotal, order.Shipping, order.Total, order.Status,
		order.PayPalOrderID, order.Reconciled, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

// UpdateOrder merges the non-nil fields of upd into the stored row and
// refreshes updated_at. Returns domain.ErrOrderNotFound if the id does
// not resolve.
func (r *OrderRepository) UpdateOrder(ctx context.Context, id string, upd domain.OrderUpdate) (*domain.Order, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(expr string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}

	if upd.CustomerEmail != nil {
		add("customer_email = $%d", *upd.CustomerEmail)
	}
	if upd.CustomerName != nil {
		add("customer_name = $%d", *upd.CustomerName)
	}
	if upd.CustomerAddress != nil {
		add("customer_address = $%d", *upd.CustomerAddress)
	}
	if upd.CustomerCity != nil {
		add("customer_city = $%d", *upd.CustomerCity)
	}
	if upd.CustomerState != nil {
		add("customer_state = $%d", *upd.CustomerState)
	}
	if upd.CustomerZip != nil {
		add("customer_zip = $%d", *upd.CustomerZip)
	}
	if upd.CustomerPhone != nil {
		add("customer_phone = $%d", *upd.CustomerPhone)
	}
	if upd.Status != nil {
		add("status = $%d", string(*upd.Status))
	}
	if upd.PayPalOrderID != nil {
		add("paypal_order_id = $%d", *upd.PayPalOrderID)
	}

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), orderColumns)
	return scanOrder(r.pool.QueryRow(ctx, query, args...))
}

// ClaimReconciliation atomically marks the order as reconciled. It
// reports true only for the first caller; later calls (or calls for an
// unknown id) report false, which keeps stock from being decremented
// twice for one order.
func (r *OrderRepository) ClaimReconciliation(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET reconciled = true, updated_at = NOW()
		 WHERE id = $1 AND NOT reconciled`, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim reconciliation: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
