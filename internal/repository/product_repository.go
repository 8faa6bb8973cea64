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

const productColumns = `id, name, COALESCE(description, ''), price, COALESCE(stock, 0),
	sizes, colors, images, details, COALESCE(category, ''), COALESCE(is_active, true),
	created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var sizes, colors, images, details []byte

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&sizes, &colors, &images, &details, &p.Category, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	for _, col := range []struct {
		raw  []byte
		dest any
	}{
		{sizes, &p.Sizes},
		{colors, &p.Colors},
		{images, &p.Images},
		{details, &p.Details},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// UpdateProduct merges the non-nil fields of upd into the stored row and
// refreshes updated_at. Returns domain.ErrProductNotFound if the id does
// not resolve.
func (r *ProductRepository) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(expr string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf(expr, len(args)))
	}
	addJSON := func(expr string, v any) {
		b, _ := json.Marshal(v)
		add(expr, string(b))
	}

	if upd.Name != nil {
		add("name = $%d", *upd.Name)
	}
	if upd.Description != nil {
		add("description = $%d", *upd.Description)
	}
	if upd.Price != nil {
		add("price = $%d", *upd.Price)
	}
	if upd.Stock != nil {
		add("stock = $%d", *upd.Stock)
	}
	if upd.Sizes != nil {
		addJSON("sizes = $%d::jsonb", upd.Sizes)
	}
	if upd.Colors != nil {
		addJSON("colors = $%d::jsonb", upd.Colors)
	}
	if upd.Images != nil {
		addJSON("images = $%d::jsonb", upd.Images)
	}
	if upd.Details != nil {
		addJSON("details = $%d::jsonb", upd.Details)
	}
	if upd.Category != nil {
		add("category = $%d", *upd.Category)
	}
	if upd.IsActive != nil {
		add("is_active = $%d", *upd.IsActive)
	}

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), productColumns)
	return scanProduct(r.pool.QueryRow(ctx, query, args...))
}

// DeleteProduct is idempotent: deleting an id that does not exist is not
// an error.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// DeductStock subtracts quantity from the product's stock in a single
// store-evaluated statement and returns the new value. A missing stock
// counts as zero, and the result may go negative; overselling is
// recorded, not rejected.
func (r *ProductRepository) DeductStock(ctx context.Context, id string, quantity int) (int, error) {
	var stock int
	err := r.pool.QueryRow(ctx,
		`UPDATE products
		 SET stock = COALESCE(stock, 0) - $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING stock`, id, quantity).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrProductNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to deduct stock: %w", err)
	}
	return stock, nil
}
