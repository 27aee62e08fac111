package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// StartNewOrder creates an empty Building order and makes it active.
func (s *Store) StartNewOrder(orderType OrderType) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if !orderType.Valid() {
		return "", s.reject("start order", common.NewInvalidArgumentf(ErrMsgInvalidOrderType, orderType))
	}
	return s.startOrder(orderType), nil
}

// SetActiveOrder points the store at an existing open order. Unknown or
// terminal ids are ignored.
func (s *Store) SetActiveOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, ok := s.orders[id]
	if !ok || o.OrderStatus.Terminal() {
		s.logger.Debug("ignoring set active order", zap.String("order_id", id))
		return false
	}
	s.activeID = id
	s.logger.Info("active order set", zap.String("order_id", id))
	return true
}

// UpdateActiveOrderDetails attaches customer details to the active order.
func (s *Store) UpdateActiveOrderDetails(d CustomerDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeOpen("update details")
	if err != nil {
		return err
	}
	o.CustomerName = d.Name
	o.CustomerPhone = d.Phone
	o.DeliveryAddress = d.Address
	s.logger.Info("updating order details", zap.String("order_id", o.ID), zap.String("customer", d.Name))
	s.emit(o.ID, EventDetailsUpdated, map[string]interface{}{
		"customer_name":    d.Name,
		"customer_phone":   d.Phone,
		"delivery_address": d.Address,
	})
	return nil
}
