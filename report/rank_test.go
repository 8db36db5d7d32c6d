package report

import (
	"testing"

	"app/models"
)

func detailFor(productID string, units int) models.SaleDetail {
	return models.SaleDetail{ProductID: productID, ProductName: productID, TotalQuantity: units}
}

func TestTopProductsShares(t *testing.T) {
	details := []models.SaleDetail{
		detailFor("P2", 30),
		detailFor("P1", 50),
		detailFor("P3", 20),
	}

	top := TopProducts(details, 10)
	if len(top) != 3 {
		t.Fatalf("expected 3 ranked products, got %d", len(top))
	}
	want := []struct {
		id    string
		share float64
	}{
		{"P1", 50.0},
		{"P2", 30.0},
		{"P3", 20.0},
	}
	for i, w := range want {
		if top[i].ProductID != w.id || top[i].SoldPercentage != w.share {
			t.Fatalf("rank %d = %+v, want %s at %.1f%%", i, top[i], w.id, w.share)
		}
	}
}

func TestTopProductsZeroTotal(t *testing.T) {
	details := []models.SaleDetail{detailFor("P1", 0), detailFor("P2", 0)}
	for _, p := range TopProducts(details, 10) {
		if p.SoldPercentage != 0 {
			t.Fatalf("zero units sold must yield 0%%, got %v", p.SoldPercentage)
		}
	}
}

func TestTopProductsCapAndStableTies(t *testing.T) {
	var details []models.SaleDetail
	for i := 0; i < 12; i++ {
		details = append(details, detailFor(string(rune('A'+i)), 5))
	}

	top := TopProducts(details, 10)
	if len(top) != 10 {
		t.Fatalf("expected top 10, got %d", len(top))
	}
	// all tied at 5 units: encounter order must survive the sort
	for i := 0; i < 10; i++ {
		if top[i].ProductID != string(rune('A'+i)) {
			t.Fatalf("tie order broken at rank %d: got %q", i, top[i].ProductID)
		}
	}
}

func TestTopProductsAccumulatesAcrossSales(t *testing.T) {
	details := []models.SaleDetail{
		detailFor("P1", 2),
		detailFor("P2", 9),
		detailFor("P1", 8),
	}
	top := TopProducts(details, 10)
	if top[0].ProductID != "P1" || top[0].UnitsSold != 10 {
		t.Fatalf("expected P1 with 10 units first, got %+v", top[0])
	}
}
