package report

import (
	"math/rand"
	"testing"

	"app/models"
)

func reportFixture() ([]models.SaleDetail, []models.Sale, []models.Product) {
	products := []models.Product{
		{ProductID: "S1", ProductName: "Runner", PurchasePrice: 50, SellingPrice: 80},
		{ProductID: "S2", ProductName: "Court", PurchasePrice: 30, SellingPrice: 55},
	}
	sales := []models.Sale{
		{ID: 1, ProductID: "S1", Quantity: float64(2), SellingPrice: 80, SaleDate: "2024-01-10"},
		{ID: 2, ProductID: "S1", Quantity: float64(1), Discount: 5, SellingPrice: 80, SaleDate: "2024-01-10"},
		{ID: 3, ProductID: "S2", SizeQuantities: map[string]interface{}{"40": float64(3)}, SellingPrice: 55, SaleDate: "2024-01-10"},
		{ID: 4, ProductID: "S1", Quantity: float64(4), SellingPrice: 80, SaleDate: "2024-02-01"},
		{ID: 5, ProductID: "S2", Quantity: float64(2), SellingPrice: 55, SaleDate: "2023-12-31"},
	}
	details, _ := NormalizeAll(sales, products)
	return details, sales, products
}

func TestDailyGroupsByProduct(t *testing.T) {
	details, _, _ := reportFixture()

	day := Daily(details, "01/10/2024")
	if day.Date != "01/10/2024" {
		t.Fatalf("unexpected report date %q", day.Date)
	}
	if len(day.Products) != 2 {
		t.Fatalf("expected 2 product groups, got %d", len(day.Products))
	}

	s1 := day.Products[0]
	if s1.ProductID != "S1" {
		t.Fatalf("expected S1 group first, got %q", s1.ProductID)
	}
	if len(s1.Sales) != 2 || s1.Sales[0].SaleID != 2 || s1.Sales[1].SaleID != 1 {
		t.Fatalf("group sales must be ordered by saleId descending, got %+v", s1.Sales)
	}
	if s1.TotalUnits != 3 {
		t.Fatalf("S1 units = %d, want 3", s1.TotalUnits)
	}
	// 80*2 + (80*1 - 5) = 235
	if s1.Totals.TotalSellingPrice != 235 {
		t.Fatalf("S1 selling total = %v, want 235", s1.Totals.TotalSellingPrice)
	}

	// day totals: 235 + 55*3 = 400 selling; purchase 50*3 + 30*3 = 240
	if day.Totals.TotalSellingPrice != 400 || day.Totals.TotalPurchasePrice != 240 {
		t.Fatalf("unexpected day totals %+v", day.Totals)
	}
	if day.Totals.TotalProfit != 160 {
		t.Fatalf("day profit = %v, want 160", day.Totals.TotalProfit)
	}
}

func TestDailyDisplayCapKeepsSums(t *testing.T) {
	product := models.Product{ProductID: "S1", ProductName: "Runner", PurchasePrice: 1, SellingPrice: 2}
	var sales []models.Sale
	for i := 1; i <= 40; i++ {
		sales = append(sales, models.Sale{
			ID: int64(i), ProductID: "S1", Quantity: float64(1), SellingPrice: 2, SaleDate: "2024-01-10",
		})
	}
	details, _ := NormalizeAll(sales, []models.Product{product})

	day := Daily(details, "01/10/2024")
	group := day.Products[0]
	if len(group.Sales) != 25 {
		t.Fatalf("display cap = %d sales, want 25", len(group.Sales))
	}
	if group.Sales[0].SaleID != 40 {
		t.Fatalf("most recent sale must lead, got id %d", group.Sales[0].SaleID)
	}
	if group.TotalUnits != 40 || group.Totals.TotalSellingPrice != 80 {
		t.Fatalf("sums must cover capped members too, got %+v", group)
	}
}

func TestMonthlyAndYearlyOrdering(t *testing.T) {
	details, _, _ := reportFixture()

	months := Monthly(details)
	if len(months) != 3 {
		t.Fatalf("expected 3 month buckets, got %d", len(months))
	}
	if months[0].Month != "2024-02" || months[1].Month != "2024-01" || months[2].Month != "2023-12" {
		t.Fatalf("months must be descending, got %+v", months)
	}

	years := Yearly(details)
	if len(years) != 2 || years[0].Year != "2024" || years[1].Year != "2023" {
		t.Fatalf("years must be descending, got %+v", years)
	}
	// 2023: one S2 sale of 2 units, profit (55-30)*2 = 50
	if years[1].Totals.TotalProfit != 50 {
		t.Fatalf("2023 profit = %v, want 50", years[1].Totals.TotalProfit)
	}
}

func TestAggregationPermutationInvariance(t *testing.T) {
	details, _, _ := reportFixture()

	baseDay := Daily(details, "01/10/2024")
	baseMonths := Monthly(details)
	baseYears := Yearly(details)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]models.SaleDetail, len(details))
		copy(shuffled, details)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		day := Daily(shuffled, "01/10/2024")
		if day.Totals != baseDay.Totals {
			t.Fatalf("daily totals changed under permutation: %+v vs %+v", day.Totals, baseDay.Totals)
		}
		for i, g := range day.Products {
			if g.Totals != baseDay.Products[i].Totals || g.ProductID != baseDay.Products[i].ProductID {
				t.Fatalf("product group changed under permutation: %+v", g)
			}
		}

		months := Monthly(shuffled)
		for i := range months {
			if months[i] != baseMonths[i] {
				t.Fatalf("monthly entry changed under permutation: %+v vs %+v", months[i], baseMonths[i])
			}
		}
		years := Yearly(shuffled)
		for i := range years {
			if years[i] != baseYears[i] {
				t.Fatalf("yearly entry changed under permutation: %+v vs %+v", years[i], baseYears[i])
			}
		}
	}
}

func TestUnparsableDatesLeftOutOfPeriodBuckets(t *testing.T) {
	products := []models.Product{
		{ProductID: "S1", ProductName: "Runner", PurchasePrice: 50, SellingPrice: 80},
	}
	sales := []models.Sale{
		{ID: 1, ProductID: "S1", Quantity: float64(2), SellingPrice: 80, SaleDate: "2024-01-10"},
		{ID: 2, ProductID: "S1", Quantity: float64(1), SellingPrice: 80, SaleDate: "soonish"},
	}
	details, _ := NormalizeAll(sales, products)
	if details[1].SaleDate.Parsed {
		t.Fatalf("expected sale 2's date to be unparsed")
	}

	monthly := Monthly(details)
	if len(monthly) != 1 || monthly[0].Month != "2024-01" {
		t.Fatalf("unparsed date must not open a month bucket, got %+v", monthly)
	}
	if monthly[0].Totals.TotalSellingPrice != 160 {
		t.Fatalf("month total must only cover the dated sale, got %v", monthly[0].Totals.TotalSellingPrice)
	}
	yearly := Yearly(details)
	if len(yearly) != 1 || yearly[0].Year != "2024" {
		t.Fatalf("unparsed date must not open a year bucket, got %+v", yearly)
	}

	// The sale itself stays visible in per-sale views.
	rows := ProfitRows(details)
	if len(rows) != 2 {
		t.Fatalf("expected both sales in profit rows, got %d", len(rows))
	}
	if rows[0].SaleID != 2 || rows[0].SoldDate != "soonish" {
		t.Fatalf("undated sale must keep its raw display value, got %+v", rows[0])
	}
}

func TestTotalsAndProfitRows(t *testing.T) {
	details, _, _ := reportFixture()

	totals := Totals(details)
	var wantSelling float64
	for _, d := range details {
		wantSelling += d.TotalSellingPrice
	}
	if totals.TotalSellingPrice != wantSelling {
		t.Fatalf("totals selling = %v, want %v", totals.TotalSellingPrice, wantSelling)
	}

	rows := ProfitRows(details)
	if len(rows) != len(details) {
		t.Fatalf("expected %d rows, got %d", len(details), len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].SaleID < rows[i].SaleID {
			t.Fatalf("profit rows must be most recent first, got %+v", rows)
		}
	}
}

func TestDailySkipsOtherDates(t *testing.T) {
	details, _, _ := reportFixture()
	day := Daily(details, "02/01/2024")
	if len(day.Products) != 1 || day.Products[0].ProductID != "S1" {
		t.Fatalf("expected only the Feb 1 sale, got %+v", day.Products)
	}
}
