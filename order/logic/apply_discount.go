package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// ApplyDiscountToCheck sets the check discount, replacing any previous one.
func (s *Store) ApplyDiscountToCheck(d Discount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if err := d.Validate(); err != nil {
		return s.reject("apply check discount", err)
	}
	o, err := s.activeUnsettled("apply check discount")
	if err != nil {
		return err
	}
	o.CheckDiscount = &d
	s.logger.Info("applying check discount",
		zap.String("order_id", o.ID),
		zap.String("discount_id", d.ID),
		zap.Float64("value", d.Value))
	s.emit(o.ID, EventCheckDiscountApplied, discountPayload("", d))
	return nil
}

// RemoveCheckDiscount clears the check discount.
func (s *Store) RemoveCheckDiscount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeUnsettled("remove check discount")
	if err != nil {
		return err
	}
	if o.CheckDiscount == nil {
		return nil
	}
	o.CheckDiscount = nil
	s.logger.Info("removing check discount", zap.String("order_id", o.ID))
	s.emit(o.ID, EventCheckDiscountRemoved, nil)
	return nil
}

// ApplyDiscountToItem applies d to a line. A nil d applies the line's
// available discount.
func (s *Store) ApplyDiscountToItem(itemID string, d *Discount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeUnsettled("apply item discount")
	if err != nil {
		return err
	}
	idx := o.FindItem(itemID)
	if idx < 0 {
		return nil
	}
	item := &o.Items[idx]
	if d == nil {
		if item.AvailableDiscount == nil {
			return s.reject("apply item discount", common.NewFailedPrecondition(ErrMsgNoAvailableDiscount), zap.String("item_id", itemID))
		}
		d = item.AvailableDiscount
	}
	if err := d.Validate(); err != nil {
		return s.reject("apply item discount", err)
	}
	item.AppliedDiscount = d.clone()
	s.logger.Info("applying item discount",
		zap.String("order_id", o.ID),
		zap.String("item_id", itemID),
		zap.String("discount_id", d.ID))
	s.emit(o.ID, EventItemDiscountApplied, discountPayload(itemID, *d))
	return nil
}

// RemoveDiscountFromItem clears the applied discount of a line.
func (s *Store) RemoveDiscountFromItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeUnsettled("remove item discount")
	if err != nil {
		return err
	}
	idx := o.FindItem(itemID)
	if idx < 0 || o.Items[idx].AppliedDiscount == nil {
		return nil
	}
	o.Items[idx].AppliedDiscount = nil
	s.logger.Info("removing item discount", zap.String("order_id", o.ID), zap.String("item_id", itemID))
	s.emit(o.ID, EventItemDiscountRemoved, map[string]interface{}{"item_id": itemID})
	return nil
}

func discountPayload(itemID string, d Discount) map[string]interface{} {
	p := map[string]interface{}{
		"discount_id": d.ID,
		"label":       d.Label,
		"value":       d.Value,
		"type":        string(d.Type),
	}
	if itemID != "" {
		p["item_id"] = itemID
	}
	return p
}
