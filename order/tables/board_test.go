package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/logic"
)

func TestBoard_Lifecycle(t *testing.T) {
	b := NewBoard(nil)
	assert.Equal(t, logic.TableAvailable, b.Status("T1"))
	assert.False(t, b.MarkCleaned("T1"))

	b.SetTableStatus("T1", logic.TableOccupied)
	assert.Equal(t, logic.TableOccupied, b.Status("T1"))
	assert.False(t, b.MarkCleaned("T1"), "occupied tables are not cleaned")

	b.SetTableStatus("T1", logic.TableNeedsCleaning)
	assert.True(t, b.MarkCleaned("T1"))
	assert.Equal(t, logic.TableAvailable, b.Status("T1"))
}

func TestBoard_Tables(t *testing.T) {
	b := NewBoard(nil)
	b.SetTableStatus("T9", logic.TableOccupied)
	b.SetTableStatus("T2", logic.TableNeedsCleaning)
	assert.Equal(t, []string{"T2", "T9"}, b.Tables())
}

func TestBoard_DrivenByStore(t *testing.T) {
	b := NewBoard(nil)
	store := logic.NewStore(logic.WithTableBoard(b))
	orderID, err := store.StartNewOrder(logic.OrderTypeDineIn)
	assert.NoError(t, err)
	_, err = store.AddItemToActiveOrder(logic.CatalogUnit{CatalogItemID: "soup", UnitPrice: 6}, logic.Customizations{}, 1)
	assert.NoError(t, err)
	_, err = store.AddPaymentToOrder(orderID, 6, "cash")
	assert.NoError(t, err)

	assert.NoError(t, store.AssignOrderToTable(orderID, "T4"))
	assert.Equal(t, logic.TableOccupied, b.Status("T4"))

	assert.NoError(t, store.UpdateOrderStatus(orderID, logic.OrderStatusClosed))
	assert.Equal(t, logic.TableNeedsCleaning, b.Status("T4"))
}
