package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

func withStatuses(o *Order, statuses ...ItemStatus) {
	for i, st := range statuses {
		item := line(string(rune('a'+i)), 5, 1)
		item.ItemStatus = st
		o.Items = append(o.Items, item)
	}
}

func TestRollup_SeatedDineIn(t *testing.T) {
	o := NewOrder("o1", OrderTypeDineIn, testOpenedAt)
	o.ServiceLocationID = "T4"
	o.OrderStatus = OrderStatusPreparing
	withStatuses(o, ItemStatusPreparing, ItemStatusReady)

	RollupOrderStatus(o)
	assert.Equal(t, OrderStatusPreparing, o.OrderStatus)

	o.Items[0].ItemStatus = ItemStatusReady
	RollupOrderStatus(o)
	assert.Equal(t, OrderStatusReady, o.OrderStatus)
}

func TestRollup_NotTracked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *Order)
	}{
		{"take away", func(o *Order) { o.OrderType = OrderTypeTakeAway }},
		{"delivery", func(o *Order) { o.OrderType = OrderTypeDelivery }},
		{"building", func(o *Order) { o.OrderStatus = OrderStatusBuilding }},
		{"unseated", func(o *Order) { o.ServiceLocationID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder("o1", OrderTypeDineIn, testOpenedAt)
			o.ServiceLocationID = "T4"
			o.OrderStatus = OrderStatusPreparing
			withStatuses(o, ItemStatusReady, ItemStatusReady)
			tt.setup(o)
			before := o.OrderStatus

			RollupOrderStatus(o)
			assert.Equal(t, before, o.OrderStatus)
		})
	}
}

func TestRollup_NoTrackedItemsLeavesStatus(t *testing.T) {
	o := NewOrder("o1", OrderTypeDineIn, testOpenedAt)
	o.ServiceLocationID = "T4"
	o.OrderStatus = OrderStatusReady
	withStatuses(o, ItemStatusUnset)

	RollupOrderStatus(o)
	assert.Equal(t, OrderStatusReady, o.OrderStatus)
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusBuilding, OrderStatusPreparing, true},
		{OrderStatusBuilding, OrderStatusClosed, true},
		{OrderStatusBuilding, OrderStatusVoided, true},
		{OrderStatusBuilding, OrderStatusReady, false},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusPreparing, true},
		{OrderStatusReady, OrderStatusClosed, true},
		{OrderStatusPreparing, OrderStatusBuilding, false},
		{OrderStatusPreparing, OrderStatusPreparing, true},
		{OrderStatusClosed, OrderStatusPreparing, false},
		{OrderStatusVoided, OrderStatusVoided, false},
	}
	for _, tt := range tests {
		err := ValidateTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
			continue
		}
		var cmdErr *common.CommandError
		require.ErrorAs(t, err, &cmdErr, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, common.StatusFailedPrecondition, cmdErr.Code)
	}
}

func TestCheckAssignable(t *testing.T) {
	o := NewOrder("o1", OrderTypeDineIn, testOpenedAt)
	assert.EqualError(t, CheckAssignable(o), ErrMsgEmptyCartAssignment)

	o.Items = append(o.Items, line("burger", 10, 1))
	assert.EqualError(t, CheckAssignable(o), ErrMsgUnpaidAssignment)

	o.PaidStatus = PaidStatusPaid
	assert.NoError(t, CheckAssignable(o))

	o.OrderStatus = OrderStatusVoided
	assert.EqualError(t, CheckAssignable(o), ErrMsgOrderTerminal)
}

func TestSettle_GuardsHistory(t *testing.T) {
	o := burgerAndFries()
	totals := Recalculate(o, DefaultTaxRate)

	assert.True(t, Settle(o, SettlePaidInFull, totals, testOpenedAt))
	assert.Equal(t, PaidStatusPaid, o.PaidStatus)
	assert.Equal(t, CheckStatusClosed, o.CheckStatus)
	assert.Equal(t, OrderStatusBuilding, o.OrderStatus)
	assert.InDelta(t, 39.9, o.TotalAmount, 1e-9)

	assert.False(t, Settle(o, SettleClosed, totals, testOpenedAt))
	assert.Equal(t, OrderStatusClosed, o.OrderStatus)
	assert.Equal(t, testOpenedAt, o.ClosedAt)
}

func TestSettle_FreezesUnroundedTotals(t *testing.T) {
	o := NewOrder("o1", OrderTypeTakeAway, testOpenedAt)
	o.Items = append(o.Items, line("tea", 3.33, 1))
	o.CheckDiscount = &Discount{ID: "d", Type: DiscountPercentage, Value: 0.15}
	totals := Recalculate(o, 0.0825)

	Settle(o, SettlePaidInFull, totals, testOpenedAt)
	assert.Equal(t, totals.Total, o.TotalAmount)
	assert.Equal(t, totals.Tax, o.TotalTax)
	assert.Equal(t, totals.Discount, o.TotalDiscount)
	assert.NotEqual(t, common.RoundMoney(totals.Total), o.TotalAmount)
}

func TestVoid(t *testing.T) {
	o := burgerAndFries()
	Void(o, testOpenedAt)
	assert.Equal(t, OrderStatusVoided, o.OrderStatus)
	assert.Equal(t, CheckStatusClosed, o.CheckStatus)
	assert.False(t, o.HistoryRecorded)
}
