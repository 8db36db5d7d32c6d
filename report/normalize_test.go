package report

import (
	"testing"

	"app/models"
)

func TestQuantityOfSaleSized(t *testing.T) {
	sale := models.Sale{
		SizeQuantities: map[string]interface{}{"A": float64(2), "B": float64(3)},
	}
	qty := QuantityOfSale(sale)
	if qty.Kind != models.QuantitySized {
		t.Fatalf("expected sized quantity, got %q", qty.Kind)
	}
	if qty.Units != 5 {
		t.Fatalf("expected 5 total units, got %d", qty.Units)
	}
}

func TestQuantityOfSaleStringScalar(t *testing.T) {
	qty := QuantityOfSale(models.Sale{Quantity: "7"})
	if qty.Kind != models.QuantityFlat || qty.Units != 7 {
		t.Fatalf("expected flat quantity of 7, got %+v", qty)
	}
}

func TestQuantityOfSaleJunkValues(t *testing.T) {
	sale := models.Sale{
		SizeQuantities: map[string]interface{}{"40": "three", "41": float64(4)},
	}
	qty := QuantityOfSale(sale)
	if qty.Units != 4 {
		t.Fatalf("non-numeric size quantity must count as 0, got %d units", qty.Units)
	}

	if got := QuantityOfSale(models.Sale{Quantity: "junk"}); got.Units != 0 {
		t.Fatalf("non-numeric scalar quantity must coerce to 0, got %d", got.Units)
	}
}

func TestNormalizeEndToEnd(t *testing.T) {
	products := []models.Product{
		{ProductID: "S1", ProductName: "Runner", PurchasePrice: 50, SellingPrice: 80},
	}
	sales := []models.Sale{
		{ID: 1, ProductID: "S1", Quantity: float64(2), Discount: 10, SellingPrice: 80, SaleDate: "2024-01-10"},
	}

	details, dropped := NormalizeAll(sales, products)
	if len(dropped) != 0 {
		t.Fatalf("unexpected dropped sales: %v", dropped)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(details))
	}

	d := details[0]
	if d.TotalQuantity != 2 {
		t.Fatalf("total quantity = %d, want 2", d.TotalQuantity)
	}
	if d.TotalPurchasePrice != 100 {
		t.Fatalf("total purchase price = %v, want 100", d.TotalPurchasePrice)
	}
	if d.TotalSellingPrice != 150 {
		t.Fatalf("total selling price = %v, want 150", d.TotalSellingPrice)
	}
	if d.Profit != 50 {
		t.Fatalf("profit = %v, want 50", d.Profit)
	}
	if d.SaleDate.Display != "01/10/2024" {
		t.Fatalf("canonical date = %q, want 01/10/2024", d.SaleDate.Display)
	}
}

func TestNormalizeAllDropsUnmatchedSales(t *testing.T) {
	products := []models.Product{{ProductID: "S1", PurchasePrice: 10, SellingPrice: 20}}
	sales := []models.Sale{
		{ID: 1, ProductID: "S1", Quantity: float64(1), SellingPrice: 20, SaleDate: "2024-01-10"},
		{ID: 2, ProductID: "GHOST", Quantity: float64(3), SellingPrice: 20, SaleDate: "2024-01-10"},
		{ID: 3, ProductID: "S1", Quantity: float64(2), SellingPrice: 20, SaleDate: "2024-01-11"},
	}

	details, dropped := NormalizeAll(sales, products)
	if len(details) != 2 {
		t.Fatalf("expected the remaining sales to survive, got %d details", len(details))
	}
	if len(dropped) != 1 || dropped[0].ID != 2 {
		t.Fatalf("expected sale 2 to be dropped, got %v", dropped)
	}
}

func TestNormalizeSizedSaleTotals(t *testing.T) {
	product := models.Product{ProductID: "S2", ProductName: "Court", PurchasePrice: 30, SellingPrice: 55, HasSizes: true}
	sale := models.Sale{
		ID:             9,
		ProductID:      "S2",
		SellingPrice:   55,
		Discount:       15,
		SizeQuantities: map[string]interface{}{"40": float64(1), "42": float64(2)},
		SaleDate:       []interface{}{float64(2024), float64(3), float64(8)},
	}

	d := Normalize(sale, product)
	if d.TotalQuantity != 3 {
		t.Fatalf("total quantity = %d, want 3", d.TotalQuantity)
	}
	// 55*3 - 15 = 150; purchase 30*3 = 90
	if d.TotalSellingPrice != 150 || d.TotalPurchasePrice != 90 || d.Profit != 60 {
		t.Fatalf("unexpected totals: %+v", d)
	}
	if d.SaleDate.Display != "03/08/2024" {
		t.Fatalf("canonical date = %q, want 03/08/2024", d.SaleDate.Display)
	}
}

func TestNormalizePercentDiscountKind(t *testing.T) {
	product := models.Product{ProductID: "S3", PurchasePrice: 40, SellingPrice: 100}
	sale := models.Sale{
		ID:           4,
		ProductID:    "S3",
		SellingPrice: 100,
		Discount:     25,
		DiscountKind: models.DiscountPercent,
		Quantity:     float64(2),
		SaleDate:     "2024-06-01",
	}

	d := Normalize(sale, product)
	// 100*2 at 25% off = 150
	if d.TotalSellingPrice != 150 {
		t.Fatalf("percent discount total = %v, want 150", d.TotalSellingPrice)
	}
}
