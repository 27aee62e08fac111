package logic

import (
	"math"
	"time"
)

// allocationEpsilon absorbs float error in remaining/price, so that
// 0.3/0.1 still covers three units.
const allocationEpsilon = 1e-9

// PaymentReceipt reports how a payment was spread over the order's lines.
// Unapplied is the part no unpaid unit could absorb; the order does not
// keep it as credit.
type PaymentReceipt struct {
	Amount    float64
	Applied   float64
	Unapplied float64
}

// Allocate spreads amount across unpaid quantity in line order, covering
// whole units only, and returns the amount left over. Lines priced at zero or
// less are fully covered whenever any amount remains.
func Allocate(items []LineItem, amount float64) float64 {
	remaining := amount
	for i := range items {
		if remaining <= 0 {
			break
		}
		item := &items[i]
		unpaid := item.UnpaidQuantity()
		if unpaid <= 0 {
			continue
		}
		if item.Price <= 0 {
			item.PaidQuantity = item.Quantity
			continue
		}
		coverable := unpaid
		if units := math.Floor(remaining/item.Price + allocationEpsilon); units < float64(unpaid) {
			coverable = int(units)
		}
		if coverable <= 0 {
			continue
		}
		item.PaidQuantity += coverable
		remaining -= float64(coverable) * item.Price
	}
	return remaining
}

// AddPayment appends the payment to the ledger and allocates it.
func AddPayment(o *Order, amount float64, method string, at time.Time) PaymentReceipt {
	o.Payments = append(o.Payments, Payment{Amount: amount, Method: method, At: at})
	leftover := Allocate(o.Items, amount)
	if leftover < 0 {
		leftover = 0
	}
	return PaymentReceipt{Amount: amount, Applied: amount - leftover, Unapplied: leftover}
}

// NormalizeFromPaymentHistory recomputes every paid quantity from scratch by
// replaying the ledger, one payment at a time, against the current lines.
// Replaying per payment (rather than the sum) keeps the result equal to
// incremental AddPayment calls, since each payment's leftover is dropped.
// It is idempotent.
func NormalizeFromPaymentHistory(o *Order) {
	for i := range o.Items {
		o.Items[i].PaidQuantity = 0
	}
	for _, p := range o.Payments {
		Allocate(o.Items, p.Amount)
	}
}

// PaidQuantities returns the paid quantity of every line, in line order.
func PaidQuantities(o *Order) []int {
	out := make([]int, len(o.Items))
	for i, item := range o.Items {
		out[i] = item.PaidQuantity
	}
	return out
}
