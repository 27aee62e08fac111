package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// CloseActiveOrder settles the active order as Closed and clears the pointer.
func (s *Store) CloseActiveOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeOpen("close order")
	if err != nil {
		return err
	}
	s.settle(o, SettleClosed)
	return nil
}

// MarkOrderAsPaid settles the order with id as paid in full. It may follow
// Close; history receives at most one snapshot per order.
func (s *Store) MarkOrderAsPaid(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	if o.OrderStatus == OrderStatusVoided {
		return s.reject("mark as paid", common.NewFailedPrecondition(ErrMsgOrderTerminal), zap.String("order_id", orderID))
	}
	s.settle(o, SettlePaidInFull)
	return nil
}

func (s *Store) settle(o *Order, reason SettleReason) {
	s.derive(o)
	totals := Recalculate(o, s.taxRate)
	first := Settle(o, reason, totals, s.now())
	s.logger.Info("order settled",
		zap.String("order_id", o.ID),
		zap.String("reason", string(reason)),
		zap.String("total", common.FormatMoney(o.TotalAmount)),
		zap.Bool("first", first))
	s.emit(o.ID, EventOrderSettled, map[string]interface{}{
		"reason":       string(reason),
		"total_amount": o.TotalAmount,
		"total_tax":    o.TotalTax,
	})

	if first {
		kept := s.history.Record(Snapshot{
			Order:      o.Clone(),
			Totals:     totals,
			Reason:     reason,
			RecordedAt: s.now(),
		})
		s.logger.Debug("history snapshot", zap.String("order_id", o.ID), zap.Bool("kept", kept))
	}
	if reason == SettleClosed {
		if o.Seated() {
			s.tables.SetTableStatus(o.ServiceLocationID, TableNeedsCleaning)
		}
		if s.activeID == o.ID {
			s.activeID = ""
		}
	}
}
