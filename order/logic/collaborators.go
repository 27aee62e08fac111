package logic

import (
	"time"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
)

// Snapshot is the settled state of an order handed to history.
type Snapshot struct {
	Order      Order
	Totals     Totals
	Reason     SettleReason
	RecordedAt time.Time
}

// HistorySink receives settled orders. Implementations own filtering and
// dedup; Record reports whether the snapshot was kept.
type HistorySink interface {
	Record(s Snapshot) bool
}

// TableStatus is the display status of a physical table.
type TableStatus string

const (
	TableAvailable     TableStatus = "available"
	TableOccupied      TableStatus = "occupied"
	TableNeedsCleaning TableStatus = "needs_cleaning"
)

// TableBoard is the floor-plan capability the store drives. The store never
// reads table state back.
type TableBoard interface {
	SetTableStatus(tableID string, status TableStatus)
}

// EventSink receives every journal page as it is appended. It runs under the
// store lock and must not call back into the Store.
type EventSink func(page *common.EventPage)

type nopHistory struct{}

func (nopHistory) Record(Snapshot) bool { return false }

type nopTables struct{}

func (nopTables) SetTableStatus(string, TableStatus) {}
