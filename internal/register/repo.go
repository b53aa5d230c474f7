package register

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/money"
)

type Repository interface {
	// Create fails with apperr.ErrRegisterAlreadyOpen when another session
	// is open.
	Create(ctx context.Context, s *Session) error
	// Current returns the open session, or nil when the drawer is closed.
	Current(ctx context.Context) (*Session, error)
	// Latest returns the most recently opened session, open or not.
	Latest(ctx context.Context) (*Session, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	// Close persists a closed session. It fails with
	// apperr.ErrRegisterNotOpen if the stored session is not open anymore,
	// and with apperr.ErrConflict if orders were numbered past
	// s.NextOrderNumber since s was read.
	Close(ctx context.Context, s *Session) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, s *Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO cash_registers (id, status, opened_at, opened_by, opening_amount, opening_counts, notes, next_order_number)
		VALUES ($1,$2,$3,NULLIF($4,''),$5,$6,NULLIF($7,''),$8)
	`, s.ID, s.Status, s.OpenedAt, s.OpenedBy, s.OpeningAmount, s.OpeningCounts, s.Notes, s.NextOrderNumber)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.ErrRegisterAlreadyOpen
		}
		return fmt.Errorf("insert register: %w", err)
	}
	return nil
}

const sessionColumns = `id, status, opened_at, closed_at, COALESCE(opened_by,''), COALESCE(closed_by,''),
		opening_amount, opening_counts, closing_amount, closing_counts, COALESCE(notes,''), COALESCE(closing_notes,''),
		next_order_number, expected_cash, variance, counted_cash, total_cash, total_transfer, total_sales,
		total_orders, total_cancelled`

func (r *PGRepo) one(ctx context.Context, where string, args ...any) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		s           Session
		expected    *money.Money
		variance    *int64
		counted     *money.Money
		cash, xfer  *money.Money
		sales       *money.Money
		nOrd, nCanc *int
	)
	err := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM cash_registers `+where, args...).Scan(
		&s.ID, &s.Status, &s.OpenedAt, &s.ClosedAt, &s.OpenedBy, &s.ClosedBy,
		&s.OpeningAmount, &s.OpeningCounts, &s.ClosingAmount, &s.ClosingCounts, &s.Notes, &s.ClosingNotes,
		&s.NextOrderNumber, &expected, &variance, &counted, &cash, &xfer, &sales, &nOrd, &nCanc,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if expected != nil {
		s.Reconciliation = &Reconciliation{
			ExpectedCash:   *expected,
			Variance:       deref(variance),
			CountedCash:    counted,
			TotalCash:      deref(cash),
			TotalTransfer:  deref(xfer),
			TotalSales:     deref(sales),
			TotalOrders:    deref(nOrd),
			TotalCancelled: deref(nCanc),
		}
	}
	return &s, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (r *PGRepo) Current(ctx context.Context) (*Session, error) {
	return r.one(ctx, `WHERE status = 'open' ORDER BY opened_at DESC LIMIT 1`)
}

func (r *PGRepo) Latest(ctx context.Context) (*Session, error) {
	return r.one(ctx, `ORDER BY opened_at DESC LIMIT 1`)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrNotFound.With("register %s not found", id)
	}
	s, err := r.one(ctx, `WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.ErrNotFound.With("register %s not found", id)
	}
	return s, nil
}

func (r *PGRepo) Close(ctx context.Context, s *Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rec := s.Reconciliation
	if rec == nil {
		rec = &Reconciliation{}
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE cash_registers
		SET status = $2, closed_at = $3, closed_by = NULLIF($4,''), closing_amount = $5, closing_counts = $6,
		    closing_notes = NULLIF($7,''), expected_cash = $8, variance = $9, counted_cash = $10,
		    total_cash = $11, total_transfer = $12, total_sales = $13, total_orders = $14, total_cancelled = $15
		WHERE id = $1 AND status = 'open' AND next_order_number = $16
	`, s.ID, s.Status, s.ClosedAt, s.ClosedBy, s.ClosingAmount, s.ClosingCounts, s.ClosingNotes,
		rec.ExpectedCash, rec.Variance, rec.CountedCash, rec.TotalCash, rec.TotalTransfer, rec.TotalSales,
		rec.TotalOrders, rec.TotalCancelled, s.NextOrderNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var open bool
	err = r.db.QueryRow(ctx, `SELECT status = 'open' FROM cash_registers WHERE id = $1`, s.ID).Scan(&open)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if open {
		return apperr.ErrConflict.With("register %s took new orders while closing; close again", s.ID)
	}
	return apperr.ErrRegisterNotOpen
}
