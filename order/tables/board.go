// Package tables tracks the display status of physical tables.
package tables

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/logic"
)

// Board is an in-memory TableBoard. Unknown tables read as Available.
type Board struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	statuses map[string]logic.TableStatus
}

// NewBoard returns a board with every table available.
func NewBoard(logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		logger:   logger,
		statuses: make(map[string]logic.TableStatus),
	}
}

// SetTableStatus records the status of a table.
func (b *Board) SetTableStatus(tableID string, status logic.TableStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.status(tableID)
	b.statuses[tableID] = status
	b.logger.Info("table status changed",
		zap.String("table_id", tableID),
		zap.String("from", string(prev)),
		zap.String("to", string(status)))
}

// Status returns the current status of a table.
func (b *Board) Status(tableID string) logic.TableStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status(tableID)
}

// MarkCleaned makes a table that needed cleaning available again.
func (b *Board) MarkCleaned(tableID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status(tableID) != logic.TableNeedsCleaning {
		return false
	}
	b.statuses[tableID] = logic.TableAvailable
	b.logger.Info("table cleaned", zap.String("table_id", tableID))
	return true
}

// Tables returns the ids of every table with a recorded status, sorted.
func (b *Board) Tables() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.statuses))
	for id := range b.statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Board) status(tableID string) logic.TableStatus {
	if s, ok := b.statuses[tableID]; ok {
		return s
	}
	return logic.TableAvailable
}
