package common

import (
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// EventPage is one entry of an order journal.
type EventPage struct {
	Sequence  uint32
	Type      string
	OrderID   string
	Payload   *structpb.Struct
	CreatedAt *timestamppb.Timestamp
}

// PackEvent wraps a single event into an EventPage.
//
// Payload values must be representable by structpb (scalars, strings,
// maps and slices of those).
func PackEvent(orderID, eventType string, payload map[string]interface{}, seq uint32) (*EventPage, error) {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	body, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, err
	}

	return &EventPage{
		Sequence:  seq,
		Type:      eventType,
		OrderID:   orderID,
		Payload:   body,
		CreatedAt: timestamppb.Now(),
	}, nil
}

// NextSequence returns the next event sequence number for a journal.
func NextSequence(pages []*EventPage) uint32 {
	if len(pages) == 0 {
		return 0
	}
	return pages[len(pages)-1].Sequence + 1
}
