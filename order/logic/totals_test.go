package logic

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpenedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func line(catalogID string, price float64, qty int) LineItem {
	return NewLineItem(CatalogUnit{CatalogItemID: catalogID, Name: catalogID, UnitPrice: price}, Customizations{}, qty)
}

func TestRecalculate_EmptyOrder(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	totals := Recalculate(o, DefaultTaxRate)
	assert.Equal(t, Totals{}, totals)
}

func TestRecalculate_UsesEffectivePrice(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	cheese := Customizations{Modifiers: []ModifierSelection{{
		CategoryID: "extras",
		Options:    []ModifierOption{{ID: "cheese", Name: "Cheese", Price: 1.5}},
	}}}
	o.Items = append(o.Items, NewLineItem(CatalogUnit{CatalogItemID: "burger", UnitPrice: 10}, cheese, 2))

	totals := Recalculate(o, 0.05)
	assert.InDelta(t, 23.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 1.15, totals.Tax, 1e-9)
	assert.InDelta(t, 24.15, totals.Total, 1e-9)
	assert.InDelta(t, 23.0, totals.OutstandingSubtotal, 1e-9)
	assert.InDelta(t, totals.Total, totals.OutstandingTotal, 1e-9)
}

func TestRecalculate_DiscountSequencing(t *testing.T) {
	const p, d1, q, d2 = 10.0, 0.1, 2, 0.2

	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	burger := line("burger", p, q)
	burger.AppliedDiscount = &Discount{ID: "promo", Type: DiscountPercentage, Value: d1}
	o.Items = append(o.Items, burger, line("fries", 4, 3))
	o.CheckDiscount = &Discount{ID: "staff", Type: DiscountPercentage, Value: d2}

	totals := Recalculate(o, DefaultTaxRate)
	s := totals.Subtotal
	require.InDelta(t, 32.0, s, 1e-9)

	itemDiscount := p * d1 * q
	assert.InDelta(t, itemDiscount+(s-itemDiscount)*d2, totals.Discount, 1e-9)
	assert.Greater(t, math.Abs(s*d1+s*d2-totals.Discount), 1e-6)
	assert.InDelta(t, (s-totals.Discount)*DefaultTaxRate, totals.Tax, 1e-9)
}

func TestRecalculate_ItemDiscountUsesOriginalPrice(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	large := Customizations{Size: &Size{ID: "large", Price: 2}}
	item := NewLineItem(CatalogUnit{CatalogItemID: "latte", UnitPrice: 4}, large, 1)
	item.AppliedDiscount = &Discount{Type: DiscountPercentage, Value: 0.5}
	o.Items = append(o.Items, item)

	totals := Recalculate(o, 0)
	assert.InDelta(t, 6.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 2.0, totals.Discount, 1e-9)
}

func TestRecalculate_FlatDiscounts(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	item := line("pizza", 12, 2)
	item.AppliedDiscount = &Discount{Type: DiscountFlat, Value: 3}
	o.Items = append(o.Items, item)
	o.CheckDiscount = &Discount{Type: DiscountFlat, Value: 100}

	totals := Recalculate(o, 0.1)
	// 6 off the items, then the check discount is capped at what is left.
	assert.InDelta(t, 24.0, totals.Discount, 1e-9)
	assert.InDelta(t, 0.0, totals.Total, 1e-9)
}

func TestRecalculate_OutstandingProratesDiscount(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	burger := line("burger", 10, 3)
	burger.PaidQuantity = 2
	o.Items = append(o.Items, burger, line("fries", 4, 2))
	o.CheckDiscount = &Discount{Type: DiscountPercentage, Value: 0.1}

	totals := Recalculate(o, 0.05)
	assert.InDelta(t, 38.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 18.0, totals.OutstandingSubtotal, 1e-9)
	assert.InDelta(t, totals.Discount*18.0/38.0, totals.OutstandingDiscount, 1e-9)
	assert.InDelta(t, (18.0-totals.OutstandingDiscount)*1.05, totals.OutstandingTotal, 1e-9)
}

func TestRecalculate_ReconciliationIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 500; trial++ {
		o := randomOrder(rng)
		for n := rng.IntN(4); n > 0; n-- {
			AddPayment(o, float64(rng.IntN(6000))/100, "cash", testOpenedAt)
		}

		totals := Recalculate(o, DefaultTaxRate)
		paidPortion := PaidSubtotal(o.Items)
		require.InDelta(t, totals.Subtotal, paidPortion+totals.OutstandingSubtotal, 1e-6, "trial %d", trial)
		for _, item := range o.Items {
			require.GreaterOrEqual(t, item.PaidQuantity, 0)
			require.LessOrEqual(t, item.PaidQuantity, item.Quantity)
		}
	}
}

func randomOrder(rng *rand.Rand) *Order {
	o := NewOrder("o", OrderTypeTakeAway, testOpenedAt)
	for n := 1 + rng.IntN(6); n > 0; n-- {
		price := float64(50+rng.IntN(2000)) / 100
		o.Items = append(o.Items, line(string(rune('a'+rng.IntN(26))), price, 1+rng.IntN(4)))
	}
	return o
}

func TestDerivePaidStatus(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	o.Items = append(o.Items, line("burger", 10, 1))

	assert.Equal(t, PaidStatusUnpaid, DerivePaidStatus(o, Recalculate(o, 0)), "no payments keeps status")

	AddPayment(o, 4, "cash", testOpenedAt)
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	assert.Equal(t, PaidStatusUnpaid, o.PaidStatus, "partial payment keeps unpaid")

	AddPayment(o, 10, "cash", testOpenedAt)
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	assert.Equal(t, PaidStatusPaid, o.PaidStatus)

	o.Items = append(o.Items, line("fries", 4, 1))
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	assert.Equal(t, PaidStatusPending, o.PaidStatus, "new balance after payment")

	AddPayment(o, 4, "cash", testOpenedAt)
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	assert.Equal(t, PaidStatusPaid, o.PaidStatus, "pending balance paid off")

	o.Items = append(o.Items, line("soda", 2, 1))
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	o.PaidStatus = DerivePaidStatus(o, Recalculate(o, 0))
	assert.Equal(t, PaidStatusPending, o.PaidStatus, "pending is stable across refreshes")

	o.Items = nil
	assert.Equal(t, PaidStatusPending, DerivePaidStatus(o, Recalculate(o, 0)), "empty order keeps status")
}
