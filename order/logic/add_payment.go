package logic

import (
	"math"

	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// AddPaymentToOrder records a payment against the order with id and
// allocates it to unpaid units in line order. Any amount no unit could
// absorb is reported as Unapplied and not kept as credit.
func (s *Store) AddPaymentToOrder(orderID string, amount float64, method string) (PaymentReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return PaymentReceipt{}, s.reject("add payment", common.NewInvalidArgument(ErrMsgPaymentPositive))
	}
	if method == "" {
		return PaymentReceipt{}, s.reject("add payment", common.NewInvalidArgument(ErrMsgPaymentMethodReq))
	}
	o, ok := s.orders[orderID]
	if !ok {
		return PaymentReceipt{}, nil
	}
	if o.OrderStatus.Terminal() {
		return PaymentReceipt{}, s.reject("add payment", common.NewFailedPrecondition(ErrMsgOrderTerminal), zap.String("order_id", orderID))
	}
	if o.CheckStatus == CheckStatusClosed {
		return PaymentReceipt{}, s.reject("add payment", common.NewFailedPrecondition(ErrMsgCheckSettled), zap.String("order_id", orderID))
	}

	receipt := AddPayment(o, amount, method, s.now())
	s.derive(o)
	s.logger.Info("payment added",
		zap.String("order_id", o.ID),
		zap.Float64("amount", amount),
		zap.String("method", method),
		zap.Float64("applied", receipt.Applied),
		zap.Float64("unapplied", receipt.Unapplied),
		zap.String("paid_status", string(o.PaidStatus)))
	s.emit(o.ID, EventPaymentAdded, map[string]interface{}{
		"amount":      amount,
		"method":      method,
		"applied":     receipt.Applied,
		"unapplied":   receipt.Unapplied,
		"paid_status": string(o.PaidStatus),
	})
	return receipt, nil
}

// NormalizePaidQuantities re-derives every paid quantity of the order with
// id from its payment ledger. Safe to call at any time.
func (s *Store) NormalizePaidQuantities(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	before := PaidQuantities(o)
	NormalizeFromPaymentHistory(o)
	s.derive(o)

	changed := 0
	for i, q := range PaidQuantities(o) {
		if q != before[i] {
			changed++
		}
	}
	if changed == 0 {
		return nil
	}
	s.logger.Warn("paid quantities drifted from ledger",
		zap.String("order_id", o.ID),
		zap.Int("lines_corrected", changed))
	s.emit(o.ID, EventPaidQuantitiesNormalized, map[string]interface{}{"lines_corrected": changed})
	return nil
}
