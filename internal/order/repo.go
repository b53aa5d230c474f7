package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

type Repository interface {
	// Create persists the order and advances its register's counter past
	// o.NumberInRegister in the same transaction. It fails with
	// apperr.ErrRegisterClosed if the register is no longer open or the
	// number was already taken.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, o *Order) error
	ListSummaries(ctx context.Context, q Query) ([]Summary, error)
	// ListBySession returns a register's orders with items, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    UPDATE cash_registers
    SET next_order_number = $2 + 1
    WHERE id = $1 AND status = 'open' AND next_order_number = $2
  `, o.RegisterSessionID, o.NumberInRegister)
	if err != nil {
		return fmt.Errorf("advance register counter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrRegisterClosed.With("register %s is not accepting order %d", o.RegisterSessionID, o.NumberInRegister)
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, cash_register_id, number_in_register, reference_name, status, total,
                        payment_method, amount_paid, change_amount, created_by, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NULLIF($10,''),$11,$11)
  `, o.ID, o.RegisterSessionID, o.NumberInRegister, o.ReferenceName, o.Status, o.Total,
		o.Payment.Method, o.Payment.AmountPaid, o.Payment.Change, o.CreatedBy, o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, it := range o.Items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (order_id, position, product_id, product_name, unit_price, quantity)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, o.ID, i, it.ProductID, it.ProductName, it.UnitPrice, it.Quantity); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

const orderColumns = `id, cash_register_id, number_in_register, reference_name, status, total,
    payment_method, amount_paid, change_amount, COALESCE(cancel_reason,''), COALESCE(created_by,''),
    created_at, updated_at`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(&o.ID, &o.RegisterSessionID, &o.NumberInRegister, &o.ReferenceName, &o.Status, &o.Total,
		&o.Payment.Method, &o.Payment.AmountPaid, &o.Payment.Change, &o.CancelReason, &o.CreatedBy,
		&o.CreatedAt, &o.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrNotFound.With("order %s not found", id)
	}
	var o Order
	if err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound.With("order %s not found", id)
		}
		return nil, err
	}
	items, err := r.items(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $2, cancel_reason = NULLIF($3,''), updated_at = $4
    WHERE id = $1
  `, o.ID, o.Status, o.CancelReason, o.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound.With("order %s not found", o.ID)
	}
	return nil
}

func (r *PGRepo) ListSummaries(ctx context.Context, q Query) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
    SELECT o.id, o.cash_register_id, o.number_in_register, o.reference_name, o.status, o.total,
           o.payment_method, o.created_at,
           COALESCE((SELECT product_name FROM order_items WHERE order_id = o.id ORDER BY position LIMIT 1), ''),
           (SELECT COUNT(*) FROM order_items WHERE order_id = o.id)
    FROM orders o
    WHERE ($1 = '' OR o.cash_register_id::text = $1)
    ORDER BY o.created_at DESC, o.number_in_register DESC, o.id DESC
    LIMIT $2 OFFSET $3
  `, q.SessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		var count int
		if err := rows.Scan(&s.ID, &s.RegisterSessionID, &s.NumberInRegister, &s.ReferenceName, &s.Status, &s.Total,
			&s.PaymentMethod, &s.CreatedAt, &s.FirstItemName, &count); err != nil {
			return nil, err
		}
		if count > 0 {
			s.MoreItems = count - 1
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListBySession(ctx context.Context, sessionID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+`
    FROM orders WHERE cash_register_id = $1
    ORDER BY number_in_register ASC
  `, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	var ids []string
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

func (r *PGRepo) items(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT order_id, product_id, product_name, unit_price, quantity
    FROM order_items
    WHERE order_id = ANY($1)
    ORDER BY order_id, position
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item, len(orderIDs))
	for rows.Next() {
		var orderID string
		var it Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}
