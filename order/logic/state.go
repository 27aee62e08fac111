// Package logic implements the order aggregate of the point-of-sale core:
// totals calculation, line item merging, payment reconciliation, the order
// lifecycle state machine and the store that owns every open check.
//
// This package has no I/O. Collaborators (history, table board) are reached
// through the interfaces in collaborators.go.
package logic

import (
	"time"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// OrderType is how the check is served.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeAway OrderType = "take_away"
	OrderTypeDelivery OrderType = "delivery"
)

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeAway, OrderTypeDelivery:
		return true
	}
	return false
}

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusBuilding  OrderStatus = "building"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusClosed    OrderStatus = "closed"
	OrderStatusVoided    OrderStatus = "voided"
)

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusClosed || s == OrderStatusVoided
}

// CheckStatus mirrors the terminal state of the order for the check itself.
type CheckStatus string

const (
	CheckStatusOpened CheckStatus = "opened"
	CheckStatusClosed CheckStatus = "closed"
)

// PaidStatus is derived from outstanding subtotal and the payment ledger.
type PaidStatus string

const (
	PaidStatusUnpaid  PaidStatus = "unpaid"
	PaidStatusPending PaidStatus = "pending"
	PaidStatusPaid    PaidStatus = "paid"
)

// ItemStatus is the kitchen status of a dine-in line. The zero value means
// the line is not tracked.
type ItemStatus string

const (
	ItemStatusUnset     ItemStatus = ""
	ItemStatusPreparing ItemStatus = "preparing"
	ItemStatusReady     ItemStatus = "ready"
)

// LineState distinguishes a line still being configured from a committed one.
type LineState int

const (
	LineConfirmed LineState = iota
	LineDraft
)

func (s LineState) String() string {
	if s == LineDraft {
		return "draft"
	}
	return "confirmed"
}

// LineItem is one purchasable line within an order.
type LineItem struct {
	ID                string
	CatalogItemID     string
	Name              string
	Quantity          int
	PaidQuantity      int
	OriginalPrice     float64 // per unit, catalog price
	Price             float64 // per unit, including customizations
	Customizations    Customizations
	AvailableDiscount *Discount
	AppliedDiscount   *Discount
	State             LineState
	ItemStatus        ItemStatus
}

// IsDraft reports whether the line is still mid-configuration.
func (l LineItem) IsDraft() bool {
	return l.State == LineDraft
}

// UnpaidQuantity is the portion of the line not yet covered by payments.
func (l LineItem) UnpaidQuantity() int {
	return l.Quantity - l.PaidQuantity
}

// Clone returns a deep copy of the line.
func (l LineItem) Clone() LineItem {
	out := l
	out.Customizations = l.Customizations.Clone()
	out.AvailableDiscount = l.AvailableDiscount.clone()
	out.AppliedDiscount = l.AppliedDiscount.clone()
	return out
}

// CatalogUnit is a purchasable unit as selected from the menu.
type CatalogUnit struct {
	CatalogItemID     string
	Name              string
	UnitPrice         float64
	AvailableDiscount *Discount
}

// NewLineItem builds a confirmed line for unit configured with c. The id is
// derived from the configuration so identical lines collide.
func NewLineItem(unit CatalogUnit, c Customizations, quantity int) LineItem {
	c = c.Clone()
	return LineItem{
		ID:                common.LineItemID(unit.CatalogItemID, c.OrderedKey()),
		CatalogItemID:     unit.CatalogItemID,
		Name:              unit.Name,
		Quantity:          quantity,
		OriginalPrice:     unit.UnitPrice,
		Price:             unit.UnitPrice + c.Surcharge(),
		Customizations:    c,
		AvailableDiscount: unit.AvailableDiscount.clone(),
		State:             LineConfirmed,
	}
}

// NewDraftLineItem builds a draft line with empty customizations.
func NewDraftLineItem(unit CatalogUnit) LineItem {
	return LineItem{
		ID:                common.NewDraftItemID(),
		CatalogItemID:     unit.CatalogItemID,
		Name:              unit.Name,
		Quantity:          1,
		OriginalPrice:     unit.UnitPrice,
		Price:             unit.UnitPrice,
		AvailableDiscount: unit.AvailableDiscount.clone(),
		State:             LineDraft,
	}
}

// Payment is one entry of the append-only payment ledger.
type Payment struct {
	Amount float64
	Method string
	At     time.Time
}

// Order is one customer check.
type Order struct {
	ID                string
	ServiceLocationID string // empty until seated
	OrderType         OrderType
	OrderStatus       OrderStatus
	CheckStatus       CheckStatus
	PaidStatus        PaidStatus
	CustomerName      string
	CustomerPhone     string
	DeliveryAddress   string
	Items             []LineItem
	Payments          []Payment
	CheckDiscount     *Discount
	OpenedAt          time.Time
	ClosedAt          time.Time

	// Frozen at settlement for the historical record; never used while open.
	TotalAmount   float64
	TotalTax      float64
	TotalDiscount float64

	HistoryRecorded bool
}

// NewOrder returns an empty Building order.
func NewOrder(id string, orderType OrderType, openedAt time.Time) *Order {
	return &Order{
		ID:          id,
		OrderType:   orderType,
		OrderStatus: OrderStatusBuilding,
		CheckStatus: CheckStatusOpened,
		PaidStatus:  PaidStatusUnpaid,
		Items:       make([]LineItem, 0),
		Payments:    make([]Payment, 0),
		OpenedAt:    openedAt,
	}
}

// Seated reports whether the order has been assigned a table.
func (o *Order) Seated() bool {
	return o.ServiceLocationID != ""
}

// FindItem returns the index of the line with id, or -1.
func (o *Order) FindItem(id string) int {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// PaidAmount is the sum of the payment ledger.
func (o *Order) PaidAmount() float64 {
	var sum float64
	for _, p := range o.Payments {
		sum += p.Amount
	}
	return sum
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() Order {
	out := *o
	out.Items = make([]LineItem, len(o.Items))
	for i, item := range o.Items {
		out.Items[i] = item.Clone()
	}
	out.Payments = make([]Payment, len(o.Payments))
	copy(out.Payments, o.Payments)
	out.CheckDiscount = o.CheckDiscount.clone()
	return out
}
