// Package registry runs the register: it owns the active cash register
// session and serializes everything that reads or advances it.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/events"
	"github.com/MikeMC777/caja-pos/internal/metrics"
	"github.com/MikeMC777/caja-pos/internal/money"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/payment"
	"github.com/MikeMC777/caja-pos/internal/product"
	"github.com/MikeMC777/caja-pos/internal/register"
)

// Catalog resolves the products an order refers to.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

type Option func(*Service)

func WithCatalog(c Catalog) Option { return func(s *Service) { s.catalog = c } }

func WithPublisher(p events.Publisher) Option { return func(s *Service) { s.pub = p } }

func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithRegisterListener is called with the register state whenever it is
// loaded or changes.
func WithRegisterListener(fn func(open bool)) Option {
	return func(s *Service) { s.listeners = append(s.listeners, fn) }
}

type Service struct {
	// mu guards active and serializes every operation that opens, closes
	// or numbers against it, and every status change.
	mu     sync.Mutex
	active *register.Session
	loaded bool

	registers register.Repository
	orders    order.Repository
	catalog   Catalog
	pub       events.Publisher
	log       *zap.Logger
	now       func() time.Time
	metrics   *metrics.Metrics
	listeners []func(open bool)
}

func New(registers register.Repository, orders order.Repository, opts ...Option) *Service {
	s := &Service{
		registers: registers,
		orders:    orders,
		pub:       events.Nop{},
		log:       zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// load picks up a session left open by a previous run. Callers hold mu.
func (s *Service) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	cur, err := s.registers.Current(ctx)
	if err != nil {
		return fmt.Errorf("load current register: %w", err)
	}
	s.active = cur
	s.loaded = true
	if cur != nil {
		s.log.Info("resumed open register", zap.String("session_id", cur.ID), zap.Int("next_order_number", cur.NextOrderNumber))
	}
	s.notify()
	return nil
}

// reload forgets the cached session so the next operation reads the store.
func (s *Service) reload() { s.loaded = false }

func (s *Service) notify() {
	open := s.active.IsOpen()
	if s.metrics != nil {
		if open {
			s.metrics.RegisterOpen.Set(1)
		} else {
			s.metrics.RegisterOpen.Set(0)
		}
	}
	for _, fn := range s.listeners {
		fn(open)
	}
}

// Start loads the register state. Calling it is optional; every operation
// loads lazily.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// ---- register

type Status struct {
	Open    bool              `json:"open"`
	Session *register.Session `json:"session,omitempty"`
}

func (s *Service) CurrentStatus(ctx context.Context) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Status{}, err
	}
	if !s.active.IsOpen() {
		return Status{}, nil
	}
	return Status{Open: true, Session: s.active.Clone()}, nil
}

func (s *Service) OpenRegister(ctx context.Context, req register.OpenRequest) (*register.Session, error) {
	sess, err := s.openRegister(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("register opened",
		zap.String("session_id", sess.ID),
		zap.Int64("opening_amount", sess.OpeningAmount.Int64()),
		zap.String("opened_by", sess.OpenedBy))
	s.publish(ctx, events.Event{Type: events.RegisterOpened, SessionID: sess.ID, At: sess.OpenedAt})
	return sess, nil
}

func (s *Service) openRegister(ctx context.Context, req register.OpenRequest) (*register.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := register.Open(req, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if s.active.IsOpen() {
		return nil, apperr.ErrRegisterAlreadyOpen.With("register %s is already open", s.active.ID)
	}
	if err := s.registers.Create(ctx, sess); err != nil {
		if errors.Is(err, apperr.ErrRegisterAlreadyOpen) {
			// opened elsewhere; pick it up next time
			s.reload()
		}
		return nil, err
	}
	s.active = sess
	s.notify()
	return sess.Clone(), nil
}

type CloseResult struct {
	Session      *register.Session `json:"session"`
	ExpectedCash money.Money       `json:"expected_cash"`
	Variance     int64             `json:"variance"`
}

// CloseRegister reconciles and closes the open session. The service lock
// is held across reading the session's orders and storing the close, so
// every order committed before the close is counted and none can follow it.
// Another process numbering orders in between makes the store refuse the
// close with ErrConflict; the next attempt rereads the register.
func (s *Service) CloseRegister(ctx context.Context, req register.CloseRequest) (*CloseResult, error) {
	res, err := s.closeRegister(ctx, req)
	if err != nil {
		return nil, err
	}
	rec := res.Session.Reconciliation
	s.log.Info("register closed",
		zap.String("session_id", res.Session.ID),
		zap.Int64("expected_cash", rec.ExpectedCash.Int64()),
		zap.Int64("variance", rec.Variance),
		zap.Int("total_orders", rec.TotalOrders),
		zap.Int("total_cancelled", rec.TotalCancelled))
	s.publish(ctx, events.Event{Type: events.RegisterClosed, SessionID: res.Session.ID, At: *res.Session.ClosedAt})
	return res, nil
}

func (s *Service) closeRegister(ctx context.Context, req register.CloseRequest) (*CloseResult, error) {
	if req.ClosingAmount < 0 {
		return nil, apperr.ErrInvalidAmount.With("closing amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if !s.active.IsOpen() {
		return nil, apperr.ErrRegisterNotOpen
	}

	orders, err := s.orders.ListBySession(ctx, s.active.ID)
	if err != nil {
		return nil, fmt.Errorf("list register orders: %w", err)
	}
	sales := make([]register.Sale, 0, len(orders))
	for _, o := range orders {
		sales = append(sales, register.Sale{
			Cash:       o.Payment.Method != payment.MethodTransfer,
			AmountPaid: o.Payment.AmountPaid,
			Cancelled:  o.Status == order.StatusCancelled,
		})
	}

	closed := s.active.Clone()
	if err := closed.Close(req, sales, s.now()); err != nil {
		return nil, err
	}
	if err := s.registers.Close(ctx, closed); err != nil {
		if errors.Is(err, apperr.ErrRegisterNotOpen) || errors.Is(err, apperr.ErrConflict) {
			s.reload()
		}
		return nil, err
	}
	s.active = closed
	s.notify()

	return &CloseResult{
		Session:      closed.Clone(),
		ExpectedCash: closed.Reconciliation.ExpectedCash,
		Variance:     closed.Reconciliation.Variance,
	}, nil
}

// ---- orders

type NewOrder struct {
	ReferenceName string
	Items         []order.Item
	Method        payment.Method
	AmountPaid    money.Money
	CreatedBy     string
}

// CreateOrder validates the sale, numbers it within the open register and
// stores it. Nothing is numbered or stored unless every check passes, and
// the number is only consumed if the store commits the order.
func (s *Service) CreateOrder(ctx context.Context, in NewOrder) (*order.Order, error) {
	o, err := s.createOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.OrdersCreated.WithLabelValues(string(o.Payment.Method)).Inc()
	}
	s.log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("session_id", o.RegisterSessionID),
		zap.Int("number", o.NumberInRegister),
		zap.Int64("total", o.Total.Int64()),
		zap.String("method", string(o.Payment.Method)))
	s.publish(ctx, orderEvent(events.OrderCreated, o))
	return o, nil
}

func (s *Service) createOrder(ctx context.Context, in NewOrder) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if !s.active.IsOpen() {
		return nil, apperr.ErrRegisterClosed.With("open the cash register before taking orders")
	}

	items, err := s.snapshot(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if err := order.Validate(in.ReferenceName, items); err != nil {
		return nil, err
	}
	total := order.Total(items)
	method := in.Method
	if method == "" {
		method = payment.MethodCash
	}
	res := payment.Validate(method, total, in.AmountPaid)
	if !res.Accepted {
		if total <= 0 {
			return nil, apperr.ErrInsufficientPayment.With("order total must be greater than zero")
		}
		return nil, apperr.ErrInsufficientPayment.With("amount paid %s does not cover total %s", in.AmountPaid, total)
	}

	next := s.active.Clone()
	n, err := next.NextNumber()
	if err != nil {
		return nil, err
	}
	now := s.now()
	o := &order.Order{
		ID:                uuid.NewString(),
		RegisterSessionID: next.ID,
		NumberInRegister:  n,
		ReferenceName:     strings.TrimSpace(in.ReferenceName),
		Items:             items,
		Total:             total,
		Payment:           order.Payment{Method: method, AmountPaid: in.AmountPaid, Change: res.Change},
		Status:            order.StatusPendingPrep,
		CreatedBy:         in.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		if errors.Is(err, apperr.ErrRegisterClosed) {
			s.reload()
		}
		return nil, err
	}
	s.active = next
	return o.Clone(), nil
}

// snapshot copies name and price from the catalog into items that refer to
// a product. Items without a product id keep what the caller sent.
func (s *Service) snapshot(ctx context.Context, in []order.Item) ([]order.Item, error) {
	items := append([]order.Item(nil), in...)
	if s.catalog == nil {
		return items, nil
	}
	for i := range items {
		if items[i].ProductID <= 0 {
			continue
		}
		p, err := s.catalog.GetByID(ctx, items[i].ProductID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.ErrInvalidOrder.With("item %d: unknown product %d", i+1, items[i].ProductID)
			}
			return nil, fmt.Errorf("load product %d: %w", items[i].ProductID, err)
		}
		if !p.Active {
			return nil, apperr.ErrInvalidOrder.With("item %d: product %q is not for sale", i+1, p.Name)
		}
		items[i].ProductName = p.Name
		items[i].UnitPrice = p.Price
	}
	return items, nil
}

func (s *Service) CancelOrder(ctx context.Context, id, reason string) (*order.Order, error) {
	return s.transition(ctx, id, order.StatusCancelled, reason)
}

func (s *Service) SetOrderStatus(ctx context.Context, id string, to order.Status) (*order.Order, error) {
	return s.transition(ctx, id, to, "")
}

func (s *Service) transition(ctx context.Context, id string, to order.Status, reason string) (*order.Order, error) {
	o, changed, err := s.applyTransition(ctx, id, to, reason)
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}
	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(o.Status)).Inc()
	}
	s.log.Info("order status changed",
		zap.String("order_id", o.ID),
		zap.Int("number", o.NumberInRegister),
		zap.String("status", string(o.Status)))
	s.publish(ctx, orderEvent(events.OrderStatusChanged, o))
	return o, nil
}

func (s *Service) applyTransition(ctx context.Context, id string, to order.Status, reason string) (*order.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if o.Status != to {
		// A closed register's reconciliation is final, so its orders are too.
		sess, err := s.registers.GetByID(ctx, o.RegisterSessionID)
		if err != nil {
			return nil, false, fmt.Errorf("load register of order %s: %w", id, err)
		}
		if !sess.IsOpen() {
			return nil, false, apperr.ErrRegisterClosed.With("register of order %d is closed; its orders can no longer change", o.NumberInRegister)
		}
	}
	changed, err := o.Transition(to, reason, s.now())
	if err != nil || !changed {
		return o, false, err
	}
	if err := s.orders.UpdateStatus(ctx, o); err != nil {
		return nil, false, fmt.Errorf("update order %s: %w", id, err)
	}
	return o, true, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// ListHistory lists order summaries most recent first. An empty session id
// lists across all registers.
func (s *Service) ListHistory(ctx context.Context, q order.Query) ([]order.Summary, error) {
	return s.orders.ListSummaries(ctx, q)
}

// ---- kitchen

type ProductionSummary struct {
	SessionID  string         `json:"register_session_id,omitempty"`
	Items      map[string]int `json:"items"`
	TotalUnits int            `json:"total_units"`
	Orders     int            `json:"orders"`
}

// ActiveOrders returns the open register's orders that are still being
// worked on, oldest first. With no open register it returns none.
func (s *Service) ActiveOrders(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	if err := s.load(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	sess := s.active
	s.mu.Unlock()

	if !sess.IsOpen() {
		return []order.Order{}, nil
	}
	all, err := s.orders.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	out := []order.Order{}
	for _, o := range all {
		if !o.Status.Terminal() {
			out = append(out, o)
		}
	}
	return out, nil
}

// ProductionSummary totals, per product, the units the kitchen still has
// to deliver for the open register. Recomputed on every call.
func (s *Service) ProductionSummary(ctx context.Context) (ProductionSummary, error) {
	active, err := s.ActiveOrders(ctx)
	if err != nil {
		return ProductionSummary{}, err
	}
	sum := ProductionSummary{Items: map[string]int{}, Orders: len(active)}
	for _, o := range active {
		sum.SessionID = o.RegisterSessionID
		for _, it := range o.Items {
			sum.Items[itemLabel(it)] += it.Quantity
			sum.TotalUnits += it.Quantity
		}
	}
	return sum, nil
}

func itemLabel(it order.Item) string {
	if it.ProductName != "" {
		return it.ProductName
	}
	return "#" + strconv.FormatInt(it.ProductID, 10)
}

// ValidatePayment is the submit gate callers use before creating an order.
func (s *Service) ValidatePayment(method payment.Method, total, amountPaid money.Money) payment.Result {
	return payment.Validate(method, total, amountPaid)
}

// ---- events

func orderEvent(t events.Type, o *order.Order) events.Event {
	return events.Event{
		Type:             t,
		OrderID:          o.ID,
		SessionID:        o.RegisterSessionID,
		NumberInRegister: o.NumberInRegister,
		Status:           string(o.Status),
		At:               o.UpdatedAt,
	}
}

// publish runs after the change is committed. Failures are logged only.
func (s *Service) publish(ctx context.Context, e events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("publish event failed",
			zap.String("type", string(e.Type)),
			zap.String("session_id", e.SessionID),
			zap.String("order_id", e.OrderID),
			zap.Error(err))
	}
}
