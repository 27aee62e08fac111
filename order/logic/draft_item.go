package logic

import (
	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// StartDraft returns the id of the configuration session for unit, reusing a
// draft of the same catalog item that has nothing selected yet.
func StartDraft(o *Order, unit CatalogUnit) (id string, created bool) {
	for _, existing := range o.Items {
		if existing.IsDraft() && existing.CatalogItemID == unit.CatalogItemID && existing.Customizations.IsEmpty() {
			return existing.ID, false
		}
	}
	draft := NewDraftLineItem(unit)
	o.Items = append(o.Items, draft)
	return draft.ID, true
}

// ConfirmDraft promotes the draft with id to a confirmed line configured with
// c. If a confirmed line with the same ordered configuration exists the
// draft's quantity merges into it. Returns the id of the resulting line and
// false if id is not a draft in o.
func ConfirmDraft(o *Order, id string, c Customizations) (string, bool) {
	idx := o.FindItem(id)
	if idx < 0 || !o.Items[idx].IsDraft() {
		return "", false
	}
	draft := o.Items[idx]
	confirmed := NewLineItem(CatalogUnit{
		CatalogItemID:     draft.CatalogItemID,
		Name:              draft.Name,
		UnitPrice:         draft.OriginalPrice,
		AvailableDiscount: draft.AvailableDiscount,
	}, c, draft.Quantity)
	confirmed.AppliedDiscount = draft.AppliedDiscount

	for i := range o.Items {
		existing := &o.Items[i]
		if i == idx || existing.IsDraft() || !SameLine(*existing, confirmed, SameConfigurationOrdered) {
			continue
		}
		existing.Quantity += confirmed.Quantity
		targetID := existing.ID
		o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		RollupOrderStatus(o)
		return targetID, true
	}

	confirmed.ItemStatus = initialItemStatus(o)
	o.Items[idx] = confirmed
	RollupOrderStatus(o)
	return confirmed.ID, true
}

// AddDraftItemToActiveOrder opens a configuration session for unit, reusing
// an untouched draft of the same catalog item.
func (s *Store) AddDraftItemToActiveOrder(unit CatalogUnit) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	if unit.CatalogItemID == "" {
		return "", s.reject("add draft", common.NewInvalidArgument(ErrMsgCatalogItemRequired))
	}
	o, err := s.activeUnsettled("add draft")
	if err != nil {
		return "", err
	}

	id, created := StartDraft(o, unit)
	if created {
		s.logger.Info("draft started", zap.String("order_id", o.ID), zap.String("item_id", id))
		s.emit(o.ID, EventDraftStarted, map[string]interface{}{
			"item_id":         id,
			"catalog_item_id": unit.CatalogItemID,
		})
	}
	s.derive(o)
	return id, nil
}

// ConfirmDraftItem promotes a draft line to a confirmed one configured with
// c. Returns the id of the resulting line, or "" if itemID is unknown.
func (s *Store) ConfirmDraftItem(itemID string, c Customizations) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.refresh()

	o, err := s.activeUnsettled("confirm draft")
	if err != nil {
		return "", err
	}
	idx := o.FindItem(itemID)
	if idx < 0 {
		return "", nil
	}
	if !o.Items[idx].IsDraft() {
		return "", s.reject("confirm draft", common.NewFailedPrecondition(ErrMsgNotDraft), zap.String("item_id", itemID))
	}

	id, _ := ConfirmDraft(o, itemID, c)
	s.logger.Info("draft confirmed", zap.String("order_id", o.ID), zap.String("draft_id", itemID), zap.String("item_id", id))
	s.emit(o.ID, EventDraftConfirmed, map[string]interface{}{
		"draft_id": itemID,
		"item_id":  id,
	})
	s.derive(o)
	return id, nil
}
