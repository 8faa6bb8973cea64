package repository

import (
	"context"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool connects to Postgres and registers the shopspring decimal
// codec so NUMERIC columns scan straight into decimal.Decimal.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10, 2) NOT NULL,
		stock INTEGER DEFAULT 0,
		sizes JSONB DEFAULT '[]'::jsonb,
		colors JSONB DEFAULT '[]'::jsonb,
		images JSONB DEFAULT '[]'::jsonb,
		details JSONB DEFAULT '[]'::jsonb,
		category TEXT DEFAULT 'denim',
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_email TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		customer_address TEXT NOT NULL,
		customer_city TEXT NOT NULL,
		customer_state TEXT NOT NULL,
		customer_zip TEXT NOT NULL,
		customer_phone TEXT,
		items JSONB NOT NULL,
		subtotal NUMERIC(10, 2) NOT NULL,
		shipping NUMERIC(10, 2) DEFAULT 0,
		total NUMERIC(10, 2) NOT NULL,
		status TEXT DEFAULT 'pending',
		paypal_order_id TEXT,
		reconciled BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_active ON products(is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(customer_email)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
}

// Migrate creates the two tables and their indexes if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
