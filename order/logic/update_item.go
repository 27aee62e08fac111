package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// ItemUpdate is a partial edit of a line; nil fields are left unchanged.
type ItemUpdate struct {
	Quantity       *int
	Customizations *Customizations
}

// UpdateItem applies u to the line with id. Paid quantity is clamped to the
// new quantity. Re-configured confirmed lines are re-keyed and merge into an
// existing line with the same ordered configuration. Returns the id of the
// line holding the result and false if id is unknown.
func UpdateItem(o *Order, id string, u ItemUpdate) (string, bool) {
	idx := o.FindItem(id)
	if idx < 0 {
		return "", false
	}
	item := &o.Items[idx]

	if u.Quantity != nil {
		item.Quantity = *u.Quantity
		if item.PaidQuantity > item.Quantity {
			item.PaidQuantity = item.Quantity
		}
	}
	if u.Customizations == nil {
		RollupOrderStatus(o)
		return item.ID, true
	}

	item.Customizations = u.Customizations.Clone()
	item.Price = item.OriginalPrice + item.Customizations.Surcharge()
	if item.IsDraft() {
		return item.ID, true
	}

	for i := range o.Items {
		other := &o.Items[i]
		if i == idx || other.IsDraft() || !SameLine(*other, *item, SameConfigurationOrdered) {
			continue
		}
		other.Quantity += item.Quantity
		other.PaidQuantity += item.PaidQuantity
		targetID := other.ID
		o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		RollupOrderStatus(o)
		return targetID, true
	}
	item.ID = common.LineItemID(item.CatalogItemID, item.Customizations.OrderedKey())
	RollupOrderStatus(o)
	return item.ID, true
}

// UpdateItemInActiveOrder edits quantity and/or customizations of a line.
// Returns the id of the line holding the result, or "" if itemID is unknown.
func (s *Store) UpdateItemInActiveOrder(itemID string, u ItemUpdate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if u.Quantity != nil && *u.Quantity < 1 {
		return "", s.reject("update item", common.NewInvalidArgument(ErrMsgQuantityPositive))
	}
	o, err := s.activeUnsettled("update item")
	if err != nil {
		return "", err
	}

	id, ok := UpdateItem(o, itemID, u)
	if !ok {
		return "", nil
	}
	payload := map[string]interface{}{"item_id": id, "previous_id": itemID}
	if u.Quantity != nil {
		payload["quantity"] = *u.Quantity
	}
	s.logger.Info("updating item", zap.String("order_id", o.ID), zap.String("item_id", id))
	s.emit(o.ID, EventItemUpdated, payload)
	s.derive(o)
	return id, nil
}

// UpdateItemStatusInActiveOrder sets the kitchen status of a line and rolls
// it up into the order status where item tracking applies.
func (s *Store) UpdateItemStatusInActiveOrder(itemID string, status ItemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if status != ItemStatusPreparing && status != ItemStatusReady {
		return s.reject("update item status", common.NewInvalidArgumentf(ErrMsgInvalidItemStatus, status))
	}
	o, err := s.activeOpen("update item status")
	if err != nil {
		return err
	}
	idx := o.FindItem(itemID)
	if idx < 0 {
		return nil
	}
	o.Items[idx].ItemStatus = status
	RollupOrderStatus(o)
	s.logger.Info("item status updated",
		zap.String("order_id", o.ID),
		zap.String("item_id", itemID),
		zap.String("status", string(status)),
		zap.String("order_status", string(o.OrderStatus)))
	s.emit(o.ID, EventItemStatusUpdated, map[string]interface{}{
		"item_id":      itemID,
		"status":       string(status),
		"order_status": string(o.OrderStatus),
	})
	return nil
}
