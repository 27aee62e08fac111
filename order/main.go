package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/AppFlow-Studio/Dexa-POS-sub000/common"
	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/history"
	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/logic"
	"github.com/AppFlow-Studio/Dexa-POS-sub000/order/tables"
)

const Domain = "order"

var logger *zap.Logger

var (
	burger = logic.CatalogUnit{
		CatalogItemID:     "burger",
		Name:              "Burger",
		UnitPrice:         10,
		AvailableDiscount: &logic.Discount{ID: "lunch", Label: "Lunch special", Type: logic.DiscountPercentage, Value: 0.1},
	}
	fries = logic.CatalogUnit{CatalogItemID: "fries", Name: "Fries", UnitPrice: 4}
	soda  = logic.CatalogUnit{CatalogItemID: "soda", Name: "Soda", UnitPrice: 2.5}

	extraCheese = logic.Customizations{Modifiers: []logic.ModifierSelection{{
		CategoryID:   "extras",
		CategoryName: "Extras",
		Options:      []logic.ModifierOption{{ID: "cheese", Name: "Cheese", Price: 1.5}},
	}}}
)

// report logs a rejected command with its gRPC status code.
func report(step string, err error) {
	if err == nil {
		return
	}
	st, _ := status.FromError(common.MapCommandError(err))
	logger.Warn("command rejected",
		zap.String("step", step),
		zap.String("code", st.Code().String()),
		zap.String("message", st.Message()))
}

func must[T any](v T, err error) T {
	if err != nil {
		logger.Fatal("demo step failed", zap.Error(err))
	}
	return v
}

func walkIn(store *logic.Store) {
	orderID := must(store.StartNewOrder(logic.OrderTypeTakeAway))
	must(store.AddItemToActiveOrder(burger, extraCheese, 2))
	must(store.AddItemToActiveOrder(fries, logic.Customizations{}, 1))

	draftID := must(store.AddDraftItemToActiveOrder(soda))
	must(store.ConfirmDraftItem(draftID, logic.Customizations{Notes: "no ice"}))

	report("apply check discount", store.ApplyDiscountToCheck(logic.Discount{
		ID: "staff", Label: "Staff", Type: logic.DiscountPercentage, Value: 0.15,
	}))

	due := store.ActiveTotals().OutstandingTotal
	receipt := must(store.AddPaymentToOrder(orderID, common.RoundMoney(due)+5, "Cash"))
	logger.Info("change due", zap.String("amount", common.FormatMoney(receipt.Unapplied)))

	report("close walk-in", store.CloseActiveOrder())
}

func dineIn(store *logic.Store) {
	orderID := must(store.StartNewOrder(logic.OrderTypeDineIn))
	burgerID := must(store.AddItemToActiveOrder(burger, logic.Customizations{}, 3))
	friesID := must(store.AddItemToActiveOrder(fries, logic.Customizations{}, 2))
	report("apply lunch special", store.ApplyDiscountToItem(burgerID, nil))
	report("update details", store.UpdateActiveOrderDetails(logic.CustomerDetails{Name: "Ada", Phone: "555-0100"}))

	// Seating before payment is refused.
	report("seat unpaid", store.AssignActiveOrderToTable("T4"))

	must(store.AddPaymentToOrder(orderID, 22, "Card"))
	report("normalize", store.NormalizePaidQuantities(orderID))
	totals, _ := store.TotalsFor(orderID)
	must(store.AddPaymentToOrder(orderID, totals.OutstandingSubtotal, "Cash"))

	report("seat paid", store.AssignActiveOrderToTable("T4"))
	store.SetActiveOrder(orderID)
	report("burger ready", store.UpdateItemStatusInActiveOrder(burgerID, logic.ItemStatusReady))
	report("fries ready", store.UpdateItemStatusInActiveOrder(friesID, logic.ItemStatusReady))

	report("mark paid", store.MarkOrderAsPaid(orderID))
	report("close dine-in", store.UpdateOrderStatus(orderID, logic.OrderStatusClosed))
	report("close again", store.UpdateOrderStatus(orderID, logic.OrderStatusClosed))
}

func main() {
	cfg, err := LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err = cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	hist := history.NewMemory(logger.Named("history"))
	board := tables.NewBoard(logger.Named("tables"))
	journalLogger := logger.Named("journal")
	store := logic.NewStore(
		logic.WithLogger(logger.Named("store")),
		logic.WithTaxRate(cfg.TaxRate),
		logic.WithHistory(hist),
		logic.WithTableBoard(board),
		logic.WithEventSink(func(page *common.EventPage) { common.LogEvent(journalLogger, page) }),
	)

	logger.Info("order service started", zap.String("domain", Domain), zap.Float64("tax_rate", cfg.TaxRate))

	walkIn(store)
	dineIn(store)

	for _, id := range board.Tables() {
		if board.MarkCleaned(id) {
			logger.Info("table ready for next guests", zap.String("table_id", id))
		}
	}

	for _, snap := range hist.List() {
		fmt.Println(history.FormatReceipt(snap))
	}
	if cfg.Development {
		for _, page := range store.Journal() {
			fmt.Println(common.FormatEvent(page))
		}
	}
	logger.Info("session complete",
		zap.Int("orders_recorded", hist.Len()),
		zap.String("revenue", common.FormatMoney(hist.Revenue())))
}
