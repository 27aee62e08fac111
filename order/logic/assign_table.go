package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// AssignActiveOrderToTable seats the active order.
func (s *Store) AssignActiveOrderToTable(tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if s.activeID == "" {
		return s.reject("assign table", ErrNoActiveOrder)
	}
	return s.assign(s.activeID, tableID)
}

// AssignOrderToTable seats the order with id at tableID. The order must hold
// at least one item and be paid. When the seated order was active a new
// walk-in order becomes active.
func (s *Store) AssignOrderToTable(orderID, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	return s.assign(orderID, tableID)
}

func (s *Store) assign(orderID, tableID string) error {
	if tableID == "" {
		return s.reject("assign table", common.NewInvalidArgument(ErrMsgTableIDRequired))
	}
	o, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	s.derive(o)
	if err := CheckAssignable(o); err != nil {
		return s.reject("assign table", err, zap.String("order_id", orderID), zap.String("table_id", tableID))
	}

	Assign(o, tableID)
	s.tables.SetTableStatus(tableID, TableOccupied)
	s.logger.Info("order assigned to table", zap.String("order_id", o.ID), zap.String("table_id", tableID))
	s.emit(o.ID, EventOrderAssigned, map[string]interface{}{"table_id": tableID})

	if s.activeID == "" || s.activeID == o.ID {
		s.startOrder(WalkInOrderType)
	}
	return nil
}
