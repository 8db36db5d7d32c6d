package report

import (
	"sort"

	"app/models"
)

// TopProducts ranks products by total units sold, descending, and keeps the
// first n. Each entry carries its share of all units sold across every
// product, one decimal place; when nothing was sold every share is 0. Ties
// keep their encounter order.
func TopProducts(details []models.SaleDetail, n int) []models.TopProduct {
	index := make(map[string]int)
	var ranked []models.TopProduct
	totalUnits := 0

	for _, d := range details {
		i, ok := index[d.ProductID]
		if !ok {
			i = len(ranked)
			index[d.ProductID] = i
			ranked = append(ranked, models.TopProduct{
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
			})
		}
		ranked[i].UnitsSold += d.TotalQuantity
		totalUnits += d.TotalQuantity
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].UnitsSold > ranked[b].UnitsSold
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	for i := range ranked {
		if totalUnits > 0 {
			ranked[i].SoldPercentage = Round1(float64(ranked[i].UnitsSold) / float64(totalUnits) * 100)
		}
	}
	return ranked
}
