package report

import (
	"testing"

	"app/models"
)

func TestComputeTotalFlatDiscount(t *testing.T) {
	if got := ComputeTotal(100, 3, 20); got != 280 {
		t.Fatalf("ComputeTotal(100, 3, 20) = %v, want 280", got)
	}
}

func TestComputeTotalFloorsAtZero(t *testing.T) {
	if got := ComputeTotal(100, 3, 500); got != 0 {
		t.Fatalf("ComputeTotal(100, 3, 500) = %v, want 0", got)
	}
}

func TestComputeDiscountedTotal(t *testing.T) {
	tests := []struct {
		name     string
		discount models.Discount
		want     float64
	}{
		{"flat", models.Discount{Kind: models.DiscountFlat, Value: 20}, 280},
		{"percent", models.Discount{Kind: models.DiscountPercent, Value: 10}, 270},
		{"percent over 100 floors", models.Discount{Kind: models.DiscountPercent, Value: 150}, 0},
		{"unknown kind treated as flat", models.Discount{Kind: "", Value: 20}, 280},
	}
	for _, tt := range tests {
		if got := ComputeDiscountedTotal(100, 3, tt.discount); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(10.016); got != 10.02 {
		t.Fatalf("Round2(10.016) = %v, want 10.02", got)
	}
	if got := Round1(33.333); got != 33.3 {
		t.Fatalf("Round1(33.333) = %v, want 33.3", got)
	}
}
