package logic

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// Journal event types.
const (
	EventOrderStarted             = "OrderStarted"
	EventItemAdded                = "ItemAdded"
	EventItemUpdated              = "ItemUpdated"
	EventItemRemoved              = "ItemRemoved"
	EventDraftStarted             = "DraftStarted"
	EventDraftConfirmed           = "DraftConfirmed"
	EventItemStatusUpdated        = "ItemStatusUpdated"
	EventDetailsUpdated           = "DetailsUpdated"
	EventCheckDiscountApplied     = "CheckDiscountApplied"
	EventCheckDiscountRemoved     = "CheckDiscountRemoved"
	EventItemDiscountApplied      = "ItemDiscountApplied"
	EventItemDiscountRemoved      = "ItemDiscountRemoved"
	EventOrderAssigned            = "OrderAssigned"
	EventOrderStatusChanged       = "OrderStatusChanged"
	EventPaymentAdded             = "PaymentAdded"
	EventPaidQuantitiesNormalized = "PaidQuantitiesNormalized"
	EventOrderSettled             = "OrderSettled"
	EventOrderVoided              = "OrderVoided"
)

// WalkInOrderType is the type of the order started after the active order is
// seated.
const WalkInOrderType = OrderTypeTakeAway

// CustomerDetails is attached to an order by the customer directory.
type CustomerDetails struct {
	Name    string
	Phone   string
	Address string
}

// Store owns every open check, the active order pointer and the cached
// totals of the active order. All methods are safe for concurrent use and
// leave the cached totals consistent before returning.
type Store struct {
	mu sync.Mutex

	logger  *zap.Logger
	taxRate float64
	history HistorySink
	tables  TableBoard
	sink    EventSink
	now     func() time.Time

	orders   map[string]*Order
	sequence []string
	activeID string
	totals   Totals
	journal  []*common.EventPage
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithTaxRate overrides DefaultTaxRate.
func WithTaxRate(rate float64) Option {
	return func(s *Store) { s.taxRate = rate }
}

// WithHistory sets the collaborator that receives settled orders.
func WithHistory(h HistorySink) Option {
	return func(s *Store) { s.history = h }
}

// WithTableBoard sets the floor-plan collaborator.
func WithTableBoard(t TableBoard) Option {
	return func(s *Store) { s.tables = t }
}

// WithEventSink registers a callback for every journal page.
func WithEventSink(sink EventSink) Option {
	return func(s *Store) { s.sink = sink }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store with no active order.
func NewStore(opts ...Option) *Store {
	s := &Store{
		logger:  zap.NewNop(),
		taxRate: DefaultTaxRate,
		history: nopHistory{},
		tables:  nopTables{},
		now:     time.Now,
		orders:  make(map[string]*Order),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveOrderID returns the id of the active order, or "".
func (s *Store) ActiveOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveOrder returns a copy of the active order.
func (s *Store) ActiveOrder() (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[s.activeID]
	if !ok {
		return Order{}, false
	}
	return o.Clone(), true
}

// ActiveTotals returns the cached totals of the active order.
func (s *Store) ActiveTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Order returns a copy of the order with id.
func (s *Store) Order(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	return o.Clone(), true
}

// Orders returns copies of all orders in creation order.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		out = append(out, s.orders[id].Clone())
	}
	return out
}

// TotalsFor recomputes the totals of any order on demand.
func (s *Store) TotalsFor(id string) (Totals, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Totals{}, false
	}
	return Recalculate(o, s.taxRate), true
}

// Journal returns a copy of the event journal.
func (s *Store) Journal() []*common.EventPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*common.EventPage(nil), s.journal...)
}

func (s *Store) startOrder(orderType OrderType) string {
	o := NewOrder(common.NewOrderID(), orderType, s.now())
	s.orders[o.ID] = o
	s.sequence = append(s.sequence, o.ID)
	s.activeID = o.ID
	s.logger.Info("starting new order", zap.String("order_id", o.ID), zap.String("order_type", string(orderType)))
	s.emit(o.ID, EventOrderStarted, map[string]interface{}{"order_type": string(orderType)})
	return o.ID
}

// activeOpen resolves the active order and rejects terminal ones.
func (s *Store) activeOpen(op string) (*Order, error) {
	o, ok := s.orders[s.activeID]
	if !ok {
		return nil, s.reject(op, ErrNoActiveOrder)
	}
	if o.OrderStatus.Terminal() {
		return nil, s.reject(op, common.NewFailedPrecondition(ErrMsgOrderTerminal), zap.String("order_id", o.ID))
	}
	return o, nil
}

// activeUnsettled resolves the active order for edits that change what is
// owed. A settled check is frozen until the order is closed.
func (s *Store) activeUnsettled(op string) (*Order, error) {
	o, err := s.activeOpen(op)
	if err != nil {
		return nil, err
	}
	if o.CheckStatus == CheckStatusClosed {
		return nil, s.reject(op, common.NewFailedPrecondition(ErrMsgCheckSettled), zap.String("order_id", o.ID))
	}
	return o, nil
}

// derive updates the paid status of an open check from its own totals.
func (s *Store) derive(o *Order) {
	if o.CheckStatus == CheckStatusClosed {
		return
	}
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, s.taxRate))
}

// refresh recomputes the cached totals of whatever order is now active.
func (s *Store) refresh() {
	o, ok := s.orders[s.activeID]
	if !ok {
		s.activeID = ""
		s.totals = Totals{}
		return
	}
	s.derive(o)
	s.totals = Recalculate(o, s.taxRate)
}

func (s *Store) reject(op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	s.logger.Warn("command rejected", fields...)
	return err
}

func (s *Store) emit(orderID, eventType string, payload map[string]interface{}) {
	page, err := common.PackEvent(orderID, eventType, payload, common.NextSequence(s.journal))
	if err != nil {
		s.logger.Error("failed to pack event", zap.String("type", eventType), zap.Error(err))
		return
	}
	s.journal = append(s.journal, page)
	if s.sink != nil {
		s.sink(page)
	}
}
