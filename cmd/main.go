package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/catalog"
	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/order"
	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/pricing"
	"github.com/VLazorykOOP/lab3cp2025-Stas0008/internal/workflow"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	// Cloning: duplicate a phone and reprice the copy.
	phone1 := catalog.NewSmartphone("iPhone 13", 999.99, "A14")
	phone2 := phone1.Clone()
	phone2.SetPrice(949.99)
	fmt.Println("Original:", phone1)
	fmt.Println("Cloned:", phone2)

	// Composite pricing: a category tree with a nested group.
	electronics := pricing.NewGroup("Electronics")
	phones := pricing.NewGroup("Phones")
	_ = phones.Add(pricing.NewLeaf(phone1))
	_ = phones.Add(pricing.NewLeaf(phone2))
	_ = electronics.Add(phones)
	_ = electronics.Add(pricing.NewLeaf(catalog.NewSmartphone("Samsung S21", 799.99, "Exynos")))
	fmt.Println(electronics.Details())
	fmt.Printf("Total price of Electronics: $%v\n", electronics.TotalPrice())

	// Order processing: retail first, then wholesale with a third item.
	receipts := order.NewStore()
	items := []pricing.Component{
		pricing.NewLeaf(phone1),
		pricing.NewLeaf(phone2),
	}

	retail := workflow.NewRetailProcessor(os.Stdout)
	r, err := retail.ProcessOrder(items)
	if err != nil {
		sugar.Fatalw("retail order rejected", "error", err)
	}
	receipts.Append(r)

	items = append(items, pricing.NewLeaf(catalog.NewSmartphone("Google Pixel", 699.99, "Tensor")))
	wholesale := workflow.NewWholesaleProcessor(os.Stdout)
	r, err = wholesale.ProcessOrder(items)
	if err != nil {
		sugar.Fatalw("wholesale order rejected", "error", err)
	}
	receipts.Append(r)

	for _, rec := range receipts.List() {
		sugar.Infow("order processed", "orderId", rec.OrderID, "total", rec.Total, "lines", len(rec.Lines))
	}
}
