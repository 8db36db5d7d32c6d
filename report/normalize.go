package report

import (
	"sort"
	"strconv"

	"app/models"
)

// toFloat coerces a loose wire value to float64. Malformed values become 0,
// never an error.
func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toInt coerces a loose wire value to int with the same zero-default rule.
func toInt(raw interface{}) (int, bool) {
	f, ok := toFloat(raw)
	return int(f), ok
}

// QuantityOfSale builds the normalized quantity union for a sale: a
// non-empty sizeQuantities map wins over the scalar quantity, and non-numeric
// values count as 0.
func QuantityOfSale(sale models.Sale) models.Quantity {
	if len(sale.SizeQuantities) > 0 {
		sizes := make(map[string]int, len(sale.SizeQuantities))
		total := 0
		for size, raw := range sale.SizeQuantities {
			qty, _ := toInt(raw)
			sizes[size] = qty
			total += qty
		}
		return models.Quantity{Kind: models.QuantitySized, Units: total, Sizes: sizes}
	}
	units, _ := toInt(sale.Quantity)
	return models.Quantity{Kind: models.QuantityFlat, Units: units}
}

// DiscountOfSale returns the sale's typed discount. Sales without an explicit
// kind carry a flat currency discount, the convention of the sized sales flow.
func DiscountOfSale(sale models.Sale) models.Discount {
	kind := sale.DiscountKind
	if kind != models.DiscountPercent {
		kind = models.DiscountFlat
	}
	return models.Discount{Kind: kind, Value: sale.Discount}
}

// Normalize derives the SaleDetail for one sale and its matched product.
func Normalize(sale models.Sale, product models.Product) models.SaleDetail {
	qty := QuantityOfSale(sale)
	discount := DiscountOfSale(sale)
	date, _ := ParseSaleDate(sale.SaleDate)

	totalSelling := ComputeDiscountedTotal(sale.SellingPrice, qty.Units, discount)
	totalPurchase := product.PurchasePrice * float64(qty.Units)

	return models.SaleDetail{
		SaleID:             sale.ID,
		ProductID:          sale.ProductID,
		ProductName:        product.ProductName,
		CategoryID:         product.CategoryID,
		TotalQuantity:      qty.Units,
		Sizes:              qty,
		TotalPurchasePrice: totalPurchase,
		TotalSellingPrice:  totalSelling,
		Discount:           discount,
		Profit:             totalSelling - totalPurchase,
		SaleDate:           date,
	}
}

// NormalizeAll normalizes every sale that has a matching product, keyed by
// the productId business key. Sales without a match are returned in dropped;
// they are a data-integrity gap for the caller to log, not an error.
func NormalizeAll(sales []models.Sale, products []models.Product) (details []models.SaleDetail, dropped []models.Sale) {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}

	details = make([]models.SaleDetail, 0, len(sales))
	for _, sale := range sales {
		product, ok := index[sale.ProductID]
		if !ok {
			dropped = append(dropped, sale)
			continue
		}
		details = append(details, Normalize(sale, product))
	}
	return details, dropped
}

// sortedKeysDesc returns the map keys in descending order, the display order
// of the monthly and yearly reports.
func sortedKeysDesc(buckets map[string]models.PeriodTotals) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
