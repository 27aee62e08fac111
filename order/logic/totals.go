package logic

import "github.com/AppFlow-Studio/Dexa-POS-sub000/common"

// DefaultTaxRate applies when no rate is configured.
const DefaultTaxRate = 0.05

// Totals are the derived monetary values of one order.
//
// No rounding is applied between steps or when totals are frozen at
// settlement; amounts are only rounded for display (common.FormatMoney).
type Totals struct {
	Subtotal            float64
	Discount            float64
	Tax                 float64
	Total               float64
	OutstandingSubtotal float64
	OutstandingDiscount float64
	OutstandingTax      float64
	OutstandingTotal    float64
}

// ItemDiscountsTotal sums line discounts, each taken against the catalog
// (original) unit price rather than the customized price.
func ItemDiscountsTotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		if item.AppliedDiscount == nil {
			continue
		}
		sum += item.AppliedDiscount.AmountOn(item.OriginalPrice) * float64(item.Quantity)
	}
	return sum
}

// Recalculate computes the totals of o at taxRate. It is a pure function of
// the order's items, discounts and paid quantities.
func Recalculate(o *Order, taxRate float64) Totals {
	var subtotal, outstandingSubtotal float64
	for _, item := range o.Items {
		subtotal += item.Price * float64(item.Quantity)
		outstandingSubtotal += item.Price * float64(item.UnpaidQuantity())
	}

	itemDiscounts := ItemDiscountsTotal(o.Items)
	afterItemDiscounts := subtotal - itemDiscounts

	var checkDiscount float64
	if o.CheckDiscount != nil {
		checkDiscount = o.CheckDiscount.AmountOn(afterItemDiscounts)
	}

	discount := itemDiscounts + checkDiscount
	finalSubtotal := subtotal - discount
	tax := finalSubtotal * taxRate

	// The discount was computed once for the whole order; the unpaid portion
	// carries its share pro rata so paid + outstanding reconcile to the whole.
	var ratio float64
	if !common.ApproxZero(subtotal) {
		ratio = outstandingSubtotal / subtotal
	}
	outstandingDiscount := discount * ratio
	outstandingFinal := outstandingSubtotal - outstandingDiscount
	outstandingTax := outstandingFinal * taxRate

	return Totals{
		Subtotal:            subtotal,
		Discount:            discount,
		Tax:                 tax,
		Total:               finalSubtotal + tax,
		OutstandingSubtotal: outstandingSubtotal,
		OutstandingDiscount: outstandingDiscount,
		OutstandingTax:      outstandingTax,
		OutstandingTotal:    outstandingFinal + outstandingTax,
	}
}

// PaidSubtotal is the value of the quantities already covered by payments.
func PaidSubtotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.PaidQuantity)
	}
	return sum
}

// DerivePaidStatus returns the paid status implied by t for o.
//
// Orders without items or without any recorded payment keep their status, so
// "never charged" is distinguishable from "settled". A partial payment leaves
// the status alone; only new unpaid balance on a Paid order yields Pending.
func DerivePaidStatus(o *Order, t Totals) PaidStatus {
	if len(o.Items) == 0 || len(o.Payments) == 0 {
		return o.PaidStatus
	}
	if common.ApproxZero(t.OutstandingSubtotal) {
		return PaidStatusPaid
	}
	if o.PaidStatus == PaidStatusPaid {
		return PaidStatusPending
	}
	return o.PaidStatus
}
