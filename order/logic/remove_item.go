package logic

import "go.uber.org/zap"

// RemoveItem deletes the line with id unconditionally, paid or not.
func RemoveItem(o *Order, id string) bool {
	idx := o.FindItem(id)
	if idx < 0 {
		return false
	}
	o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
	RollupOrderStatus(o)
	return true
}

// RemoveItemFromActiveOrder deletes a line, paid or not.
func (s *Store) RemoveItemFromActiveOrder(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeUnsettled("remove item")
	if err != nil {
		return err
	}
	if !RemoveItem(o, itemID) {
		return nil
	}
	s.logger.Info("removing item", zap.String("order_id", o.ID), zap.String("item_id", itemID))
	s.emit(o.ID, EventItemRemoved, map[string]interface{}{"item_id": itemID})
	s.derive(o)
	return nil
}
