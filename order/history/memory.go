// Package history keeps settled orders for reporting and receipts.
package history

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/logic"
)

// Memory is an in-memory HistorySink. It accepts only orders that are Closed
// or Paid, and keeps the first snapshot per order id.
type Memory struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	byID    map[string]logic.Snapshot
	ordered []string
}

// NewMemory returns an empty history.
func NewMemory(logger *zap.Logger) *Memory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memory{
		logger: logger,
		byID:   make(map[string]logic.Snapshot),
	}
}

// Accepts reports whether an order belongs in history.
func Accepts(o logic.Order) bool {
	return o.OrderStatus == logic.OrderStatusClosed || o.PaidStatus == logic.PaidStatusPaid
}

// Record stores s unless it is filtered out or already present.
func (m *Memory) Record(s logic.Snapshot) bool {
	if !Accepts(s.Order) {
		m.logger.Debug("history skipped order",
			zap.String("order_id", s.Order.ID),
			zap.String("order_status", string(s.Order.OrderStatus)),
			zap.String("paid_status", string(s.Order.PaidStatus)))
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[s.Order.ID]; exists {
		return false
	}
	m.byID[s.Order.ID] = s
	m.ordered = append(m.ordered, s.Order.ID)
	m.logger.Info("order recorded",
		zap.String("order_id", s.Order.ID),
		zap.String("reason", string(s.Reason)),
		zap.String("total", common.FormatMoney(s.Order.TotalAmount)))
	return true
}

// Get returns the snapshot for an order id.
func (m *Memory) Get(orderID string) (logic.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[orderID]
	return s, ok
}

// List returns all snapshots in the order they were recorded.
func (m *Memory) List() []logic.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]logic.Snapshot, 0, len(m.ordered))
	for _, id := range m.ordered {
		out = append(out, m.byID[id])
	}
	return out
}

// Len is the number of recorded orders.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ordered)
}

// Revenue sums the frozen totals of every recorded order in recording order.
func (m *Memory) Revenue() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum float64
	for _, id := range m.ordered {
		sum += m.byID[id].Order.TotalAmount
	}
	return sum
}

// FormatReceipt renders a recorded order as receipt text.
func FormatReceipt(s logic.Snapshot) string {
	var lines []string
	o := s.Order

	shortID := o.ID
	if len(shortID) > 16 {
		shortID = shortID[:16]
	}

	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, "           RECEIPT")
	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, fmt.Sprintf("Order: %s...", shortID))
	if o.Seated() {
		lines = append(lines, fmt.Sprintf("Table: %s", o.ServiceLocationID))
	}
	if o.CustomerName != "" {
		lines = append(lines, fmt.Sprintf("Customer: %s", o.CustomerName))
	}
	lines = append(lines, strings.Repeat("─", 40))

	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%d x %s @ %s = %s",
			item.Quantity,
			item.Name,
			common.FormatMoney(item.Price),
			common.FormatMoney(item.Price*float64(item.Quantity))))
	}

	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("Subtotal:              %s", common.FormatMoney(s.Totals.Subtotal)))
	if s.Totals.Discount > 0 {
		lines = append(lines, fmt.Sprintf("Discount:             -%s", common.FormatMoney(s.Totals.Discount)))
	}
	lines = append(lines, fmt.Sprintf("Tax:                   %s", common.FormatMoney(o.TotalTax)))
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("TOTAL:                 %s", common.FormatMoney(o.TotalAmount)))
	for _, p := range o.Payments {
		lines = append(lines, fmt.Sprintf("Payment: %s %s", p.Method, common.FormatMoney(p.Amount)))
	}
	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, "     Thank you for dining with us!")
	lines = append(lines, strings.Repeat("═", 40))

	return strings.Join(lines, "\n")
}
