package logic

import (
	"time"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// SettleReason names the path by which an order reached its settled state.
type SettleReason string

const (
	SettlePaidInFull SettleReason = "paid_in_full"
	SettleClosed     SettleReason = "closed"
)

// tracksItemStatus reports whether item mutations drive the order status.
// Only seated dine-in orders past Building do; everything else is moved by
// explicit calls.
func tracksItemStatus(o *Order) bool {
	return o.OrderType == OrderTypeDineIn &&
		o.OrderStatus != OrderStatusBuilding &&
		!o.OrderStatus.Terminal() &&
		o.Seated()
}

func initialItemStatus(o *Order) ItemStatus {
	if tracksItemStatus(o) {
		return ItemStatusPreparing
	}
	return ItemStatusUnset
}

// RollupOrderStatus derives the order status from item statuses. All Ready
// gives Ready, any Preparing gives Preparing, otherwise the status stays.
func RollupOrderStatus(o *Order) {
	if !tracksItemStatus(o) || len(o.Items) == 0 {
		return
	}
	allReady := true
	anyPreparing := false
	for _, item := range o.Items {
		if item.ItemStatus != ItemStatusReady {
			allReady = false
		}
		if item.ItemStatus == ItemStatusPreparing {
			anyPreparing = true
		}
	}
	switch {
	case allReady:
		o.OrderStatus = OrderStatusReady
	case anyPreparing:
		o.OrderStatus = OrderStatusPreparing
	}
}

var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusBuilding:  {OrderStatusPreparing, OrderStatusClosed, OrderStatusVoided},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusClosed, OrderStatusVoided},
	OrderStatusReady:     {OrderStatusPreparing, OrderStatusClosed, OrderStatusVoided},
}

// ValidateTransition checks that from -> to is an edge of the lifecycle.
// Staying in place is allowed for non-terminal states.
func ValidateTransition(from, to OrderStatus) error {
	if from.Terminal() {
		return common.NewFailedPrecondition(ErrMsgOrderTerminal)
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return common.NewFailedPreconditionf(ErrMsgInvalidTransition, from, to)
}

// CheckAssignable guards table assignment: the order must be open, hold at
// least one item and be fully paid.
func CheckAssignable(o *Order) error {
	if o.OrderStatus.Terminal() {
		return common.NewFailedPrecondition(ErrMsgOrderTerminal)
	}
	if len(o.Items) == 0 {
		return common.NewFailedPrecondition(ErrMsgEmptyCartAssignment)
	}
	if o.PaidStatus != PaidStatusPaid {
		return common.NewFailedPrecondition(ErrMsgUnpaidAssignment)
	}
	return nil
}

// Assign seats o at tableID and starts kitchen tracking.
func Assign(o *Order, tableID string) {
	o.ServiceLocationID = tableID
	o.OrderType = OrderTypeDineIn
	o.OrderStatus = OrderStatusPreparing
	for i := range o.Items {
		if o.Items[i].ItemStatus == ItemStatusUnset {
			o.Items[i].ItemStatus = ItemStatusPreparing
		}
	}
}

// Settle moves o to its settled state for reason and freezes totals from t
// unrounded.
// Both reasons funnel through here; the result reports whether this is the
// first settlement, i.e. whether a snapshot should go to history.
func Settle(o *Order, reason SettleReason, t Totals, at time.Time) bool {
	o.TotalAmount = t.Total
	o.TotalTax = t.Tax
	o.CheckStatus = CheckStatusClosed
	switch reason {
	case SettlePaidInFull:
		o.PaidStatus = PaidStatusPaid
		o.TotalDiscount = t.Discount
	case SettleClosed:
		o.OrderStatus = OrderStatusClosed
		o.ClosedAt = at
	}
	if o.HistoryRecorded {
		return false
	}
	o.HistoryRecorded = true
	return true
}

// Void cancels o. Voided orders never reach history.
func Void(o *Order, at time.Time) {
	o.OrderStatus = OrderStatusVoided
	o.CheckStatus = CheckStatusClosed
	o.ClosedAt = at
}
