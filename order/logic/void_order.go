package logic

import "go.uber.org/zap"

// VoidOrder cancels the order with id. Voided orders never reach history.
func (s *Store) VoidOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	if err := ValidateTransition(o.OrderStatus, OrderStatusVoided); err != nil {
		return s.reject("void order", err, zap.String("order_id", orderID))
	}
	s.void(o)
	return nil
}

func (s *Store) void(o *Order) {
	Void(o, s.now())
	if o.Seated() {
		s.tables.SetTableStatus(o.ServiceLocationID, TableNeedsCleaning)
	}
	if s.activeID == o.ID {
		s.activeID = ""
	}
	s.logger.Info("order voided", zap.String("order_id", o.ID))
	s.emit(o.ID, EventOrderVoided, nil)
}
