// Package memstore keeps registers, orders, products and users in process
// memory. It backs STORE_DRIVER=memory and the service tests, and follows
// the same contracts as the PostgreSQL repositories.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/register"
	"github.com/MikeMC777/caja-pos/internal/user"
)

type Store struct {
	mu sync.RWMutex

	sessions    map[string]*register.Session
	sessionSeq  []string
	orders      map[string]*order.Order
	orderSeq    []string
	products    map[int64]*product.Product
	nextProduct int64
	users       map[string]*user.User
}

func New() *Store {
	return &Store{
		sessions:    map[string]*register.Session{},
		orders:      map[string]*order.Order{},
		products:    map[int64]*product.Product{},
		nextProduct: 1,
		users:       map[string]*user.User{},
	}
}

func (s *Store) Registers() *RegisterRepo { return &RegisterRepo{s} }
func (s *Store) Orders() *OrderRepo       { return &OrderRepo{s} }
func (s *Store) Products() *ProductRepo   { return &ProductRepo{s} }
func (s *Store) Users() *UserRepo         { return &UserRepo{s} }

// ---- registers

type RegisterRepo struct{ s *Store }

func (r *RegisterRepo) Create(ctx context.Context, sess *register.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, cur := range r.s.sessions {
		if cur.IsOpen() {
			return apperr.ErrRegisterAlreadyOpen
		}
	}
	r.s.sessions[sess.ID] = sess.Clone()
	r.s.sessionSeq = append(r.s.sessionSeq, sess.ID)
	return nil
}

func (r *RegisterRepo) Current(ctx context.Context) (*register.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := len(r.s.sessionSeq) - 1; i >= 0; i-- {
		if sess := r.s.sessions[r.s.sessionSeq[i]]; sess.IsOpen() {
			return sess.Clone(), nil
		}
	}
	return nil, nil
}

func (r *RegisterRepo) Latest(ctx context.Context) (*register.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if len(r.s.sessionSeq) == 0 {
		return nil, nil
	}
	return r.s.sessions[r.s.sessionSeq[len(r.s.sessionSeq)-1]].Clone(), nil
}

func (r *RegisterRepo) GetByID(ctx context.Context, id string) (*register.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, apperr.ErrNotFound.With("register %s not found", id)
	}
	return sess.Clone(), nil
}

func (r *RegisterRepo) Close(ctx context.Context, sess *register.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.sessions[sess.ID]
	if !ok || !cur.IsOpen() {
		return apperr.ErrRegisterNotOpen
	}
	if cur.NextOrderNumber != sess.NextOrderNumber {
		return apperr.ErrConflict.With("register %s took new orders while closing; close again", sess.ID)
	}
	r.s.sessions[sess.ID] = sess.Clone()
	return nil
}

// ---- orders

type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[o.RegisterSessionID]
	if !ok || !sess.IsOpen() || sess.NextOrderNumber != o.NumberInRegister {
		return apperr.ErrRegisterClosed.With("register %s is not accepting order %d", o.RegisterSessionID, o.NumberInRegister)
	}
	sess.NextOrderNumber = o.NumberInRegister + 1
	r.s.orders[o.ID] = o.Clone()
	r.s.orderSeq = append(r.s.orderSeq, o.ID)
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, apperr.ErrNotFound.With("order %s not found", id)
	}
	return o.Clone(), nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.orders[o.ID]
	if !ok {
		return apperr.ErrNotFound.With("order %s not found", o.ID)
	}
	cur.Status = o.Status
	cur.CancelReason = o.CancelReason
	cur.UpdatedAt = o.UpdatedAt
	return nil
}

// ListSummaries lists most recent first. Insertion order breaks ties so
// the listing is stable even when timestamps collide.
func (r *OrderRepo) ListSummaries(ctx context.Context, q order.Query) ([]order.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 || limit > order.MaxHistoryLimit {
		limit = order.DefaultHistoryLimit
	}
	out := []order.Summary{}
	skipped := 0
	for i := len(r.s.orderSeq) - 1; i >= 0 && len(out) < limit; i-- {
		o := r.s.orders[r.s.orderSeq[i]]
		if q.SessionID != "" && o.RegisterSessionID != q.SessionID {
			continue
		}
		if skipped < q.Offset {
			skipped++
			continue
		}
		out = append(out, o.Summary())
	}
	return out, nil
}

func (r *OrderRepo) ListBySession(ctx context.Context, sessionID string) ([]order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []order.Order
	for _, id := range r.s.orderSeq {
		if o := r.s.orders[id]; o.RegisterSessionID == sessionID {
			out = append(out, *o.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NumberInRegister < out[j].NumberInRegister })
	return out, nil
}

// ---- products

type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.SKU != "" {
		for _, cur := range r.s.products {
			if cur.SKU == p.SKU {
				return apperr.ErrConflict.With("sku %q already exists", p.SKU)
			}
		}
	}
	now := time.Now().UTC()
	p.ID = r.s.nextProduct
	r.s.nextProduct++
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, apperr.ErrNotFound.With("product %d not found", id)
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) ListActive(ctx context.Context) ([]product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []product.Product{}
	for _, p := range r.s.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := out[i].Category, out[j].Category
		if ci != cj {
			// uncategorized last, as in postgres
			if ci == "" || cj == "" {
				return cj == ""
			}
			return ci < cj
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ---- users

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, cur := range r.s.users {
		if cur.Username == u.Username {
			return user.ErrAlreadyExist
		}
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}
