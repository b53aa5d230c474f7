// Package product provides the catalog the register sells from and its
// PostgreSQL implementation.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/money"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	// ListActive returns sellable products ordered by category, then name.
	ListActive(ctx context.Context) ([]Product, error)
}

// New validates a creation request into a product ready to store.
func New(req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.ErrInvalidInput.With("name is required")
	}
	price, err := money.FromDecimal(req.Price)
	if err != nil {
		return nil, apperr.ErrInvalidAmount.With("price: %v", err)
	}
	return &Product{
		SKU:      strings.TrimSpace(req.SKU),
		Name:     name,
		Category: strings.TrimSpace(req.Category),
		Price:    price,
		Active:   true,
	}, nil
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO products (sku, name, category, price, active, created_at, updated_at)
		VALUES (NULLIF($1,''),$2,NULLIF($3,''),$4,$5,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`, p.SKU, p.Name, p.Category, p.Price, p.Active).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.ErrConflict.With("sku %q already exists", p.SKU)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(sku,''), name, COALESCE(category,''), price, active, created_at, updated_at
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound.With("product %d not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) ListActive(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(sku,''), name, COALESCE(category,''), price, active, created_at, updated_at
		FROM products
		WHERE active
		ORDER BY category ASC NULLS LAST, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
