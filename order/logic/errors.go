package logic

import "github.com/AppFlow-Studio/Dexa-POS-sub000/common"

// Error message constants for the order domain.
const (
	ErrMsgNoActiveOrder       = "No active order"
	ErrMsgOrderTerminal       = "Order is already closed or voided"
	ErrMsgCheckSettled        = "Check is already settled"
	ErrMsgEmptyCartAssignment = "Cannot assign an empty order to a table"
	ErrMsgUnpaidAssignment    = "Order must be paid before it can be seated"
	ErrMsgTableIDRequired     = "Table ID is required"
	ErrMsgQuantityPositive    = "Quantity must be positive"
	ErrMsgCatalogItemRequired = "Catalog item ID is required"
	ErrMsgPaymentPositive     = "Payment amount must be positive"
	ErrMsgPaymentMethodReq    = "Payment method is required"
	ErrMsgPercentageRange     = "Percentage discount must be between 0 and 1"
	ErrMsgFlatDiscountNeg     = "Flat discount cannot be negative"
	ErrMsgInvalidDiscountType = "Invalid discount type: %q"
	ErrMsgNoAvailableDiscount = "Item has no available discount"
	ErrMsgNotDraft            = "Item is not a draft"
	ErrMsgInvalidOrderType    = "Invalid order type: %q"
	ErrMsgInvalidTransition   = "Cannot move order from %s to %s"
	ErrMsgInvalidItemStatus   = "Invalid item status: %q"
	ErrMsgInvalidOrderStatus  = "Invalid order status: %q"
)

// ErrNoActiveOrder is returned by active-order operations when nothing is active.
var ErrNoActiveOrder = common.NewNotFound(ErrMsgNoActiveOrder)
