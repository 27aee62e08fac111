package common

import (
	"testing"
)

func TestPackEvent_setsEnvelopeFields(t *testing.T) {
	page, err := PackEvent("order-1", "ItemAdded", map[string]interface{}{
		"item_id":  "abc",
		"quantity": 2,
		"price":    4.5,
	}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Sequence != 7 {
		t.Errorf("expected sequence 7, got %d", page.Sequence)
	}
	if page.Type != "ItemAdded" || page.OrderID != "order-1" {
		t.Errorf("unexpected envelope %q/%q", page.Type, page.OrderID)
	}
	if page.CreatedAt == nil {
		t.Error("created_at is nil")
	}

	fields := page.Payload.AsMap()
	if fields["item_id"] != "abc" {
		t.Errorf("expected item_id abc, got %v", fields["item_id"])
	}
	if fields["quantity"] != float64(2) {
		t.Errorf("expected quantity 2, got %v", fields["quantity"])
	}
}

func TestPackEvent_nilPayload_givesEmptyStruct(t *testing.T) {
	page, err := PackEvent("order-1", "OrderStarted", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Payload == nil || len(page.Payload.Fields) != 0 {
		t.Error("expected empty payload struct")
	}
}

func TestPackEvent_unsupportedValue_returnsError(t *testing.T) {
	_, err := PackEvent("order-1", "Bad", map[string]interface{}{"ch": make(chan int)}, 0)
	if err == nil {
		t.Error("expected error for unsupported payload value")
	}
}

func TestNextSequence(t *testing.T) {
	if NextSequence(nil) != 0 {
		t.Error("empty journal should start at 0")
	}
	pages := []*EventPage{{Sequence: 0}, {Sequence: 1}, {Sequence: 2}}
	if got := NextSequence(pages); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
