package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// UpdateOrderStatus moves the order with id along the lifecycle. Closed
// settles the order and Voided voids it.
func (s *Store) UpdateOrderStatus(orderID string, status OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	switch status {
	case OrderStatusBuilding, OrderStatusPreparing, OrderStatusReady, OrderStatusClosed, OrderStatusVoided:
	default:
		return s.reject("update order status", common.NewInvalidArgumentf(ErrMsgInvalidOrderStatus, status))
	}
	o, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	if err := ValidateTransition(o.OrderStatus, status); err != nil {
		return s.reject("update order status", err, zap.String("order_id", orderID))
	}
	if o.OrderStatus == status {
		return nil
	}

	switch status {
	case OrderStatusClosed:
		s.settle(o, SettleClosed)
	case OrderStatusVoided:
		s.void(o)
	default:
		from := o.OrderStatus
		o.OrderStatus = status
		s.logger.Info("order status changed",
			zap.String("order_id", o.ID),
			zap.String("from", string(from)),
			zap.String("to", string(status)))
		s.emit(o.ID, EventOrderStatusChanged, map[string]interface{}{
			"from": string(from),
			"to":   string(status),
		})
	}
	return nil
}
