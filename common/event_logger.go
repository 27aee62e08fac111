package common

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ANSI color codes
const (
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// EventColor returns the color for an event type.
func EventColor(eventType string) string {
	switch {
	case strings.Contains(eventType, "Started"):
		return Green
	case strings.Contains(eventType, "Settled"), strings.Contains(eventType, "Assigned"):
		return Cyan
	case strings.Contains(eventType, "Voided"), strings.Contains(eventType, "Removed"):
		return Red
	case strings.Contains(eventType, "Added"), strings.Contains(eventType, "Applied"):
		return Yellow
	case strings.Contains(eventType, "Payment"):
		return Magenta
	default:
		return ""
	}
}

// LogEvent writes a journal page as one structured log line.
func LogEvent(logger *zap.Logger, page *EventPage) {
	if page == nil {
		return
	}
	fields := []zap.Field{
		zap.Uint32("seq", page.Sequence),
		zap.String("order_id", page.OrderID),
	}
	if page.Payload != nil {
		fields = append(fields, zap.Any("payload", page.Payload.AsMap()))
	}
	logger.Info(page.Type, fields...)
}

// FormatEvent renders a journal page for a terminal.
func FormatEvent(page *EventPage) string {
	var b strings.Builder

	orderID := page.OrderID
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}

	fmt.Fprintf(&b, "%s%s%s\n", Bold, strings.Repeat("─", 60), Reset)
	fmt.Fprintf(&b, "%s[ORDER]%s %sseq:%d%s  %s%s...%s\n",
		Bold, Reset,
		Dim, page.Sequence, Reset,
		Cyan, orderID, Reset)
	fmt.Fprintf(&b, "%s%s%s%s\n", Bold, EventColor(page.Type), page.Type, Reset)

	if page.Payload != nil {
		values := page.Payload.AsMap()
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s%s:%s %v\n", Dim, k, Reset, values[k])
		}
	}
	return b.String()
}
