package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// AddItem merges item into o.
//
// A confirmed line that is the same purchasable line (catalog item plus
// SameConfigurationUnordered) absorbs the quantity and keeps its paid
// quantity. A matching draft is replaced by item as a confirmed line.
// Otherwise item is appended. Returns the id of the line that now holds the
// quantity.
func AddItem(o *Order, item LineItem) string {
	return addItem(o, item, SameConfigurationUnordered)
}

func addItem(o *Order, item LineItem, same func(a, b Customizations) bool) string {
	item.State = LineConfirmed
	item.PaidQuantity = 0

	draftIdx := -1
	for i := range o.Items {
		existing := &o.Items[i]
		if !SameLine(*existing, item, same) {
			continue
		}
		if existing.IsDraft() {
			if draftIdx < 0 {
				draftIdx = i
			}
			continue
		}
		existing.Quantity += item.Quantity
		RollupOrderStatus(o)
		return existing.ID
	}
	if draftIdx >= 0 {
		o.Items = append(o.Items[:draftIdx], o.Items[draftIdx+1:]...)
	}

	item.ItemStatus = initialItemStatus(o)
	o.Items = append(o.Items, item)
	RollupOrderStatus(o)
	return item.ID
}

// AddItemToActiveOrder adds quantity units of unit configured with c,
// merging into an existing line when it is the same purchasable line.
// Returns the id of the line that holds the units.
func (s *Store) AddItemToActiveOrder(unit CatalogUnit, c Customizations, quantity int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if quantity < 1 {
		return "", s.reject("add item", common.NewInvalidArgument(ErrMsgQuantityPositive))
	}
	if unit.CatalogItemID == "" {
		return "", s.reject("add item", common.NewInvalidArgument(ErrMsgCatalogItemRequired))
	}
	o, err := s.activeUnsettled("add item")
	if err != nil {
		return "", err
	}

	id := AddItem(o, NewLineItem(unit, c, quantity))
	s.logger.Info("adding item",
		zap.String("order_id", o.ID),
		zap.String("item_id", id),
		zap.String("catalog_item_id", unit.CatalogItemID),
		zap.Int("quantity", quantity))
	s.emit(o.ID, EventItemAdded, map[string]interface{}{
		"item_id":         id,
		"catalog_item_id": unit.CatalogItemID,
		"name":            unit.Name,
		"quantity":        quantity,
	})
	s.derive(o)
	return id, nil
}
