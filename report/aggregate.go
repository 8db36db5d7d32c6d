package report

import (
	"sort"
	"time"

	"app/models"
)

// dailyGroupDisplayCap bounds how many member sales a daily product group
// carries; sums always cover every member.
const dailyGroupDisplayCap = 25

// Daily folds the details that fall on targetDate (MM/DD/YYYY; empty means
// today) into per-product groups. Member sales are ordered by saleId
// descending, most recent first, and capped for display; the group and day
// sums cover all members regardless of the cap.
func Daily(details []models.SaleDetail, targetDate string) models.DailyReport {
	if targetDate == "" {
		targetDate = time.Now().Format(displayDateLayout)
	}

	groupIndex := make(map[string]int)
	var groups []models.ProductGroup
	var dayTotals models.PeriodTotals

	for _, d := range details {
		if d.SaleDate.Display != targetDate {
			continue
		}
		i, ok := groupIndex[d.ProductID]
		if !ok {
			i = len(groups)
			groupIndex[d.ProductID] = i
			groups = append(groups, models.ProductGroup{
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
			})
		}
		groups[i].Sales = append(groups[i].Sales, d)
		groups[i].TotalUnits += d.TotalQuantity
		groups[i].Totals.TotalSellingPrice += d.TotalSellingPrice
		groups[i].Totals.TotalPurchasePrice += d.TotalPurchasePrice
		groups[i].Totals.TotalProfit += d.Profit

		dayTotals.TotalSellingPrice += d.TotalSellingPrice
		dayTotals.TotalPurchasePrice += d.TotalPurchasePrice
		dayTotals.TotalProfit += d.Profit
	}

	for i := range groups {
		sort.SliceStable(groups[i].Sales, func(a, b int) bool {
			return groups[i].Sales[a].SaleID > groups[i].Sales[b].SaleID
		})
		if len(groups[i].Sales) > dailyGroupDisplayCap {
			groups[i].Sales = groups[i].Sales[:dailyGroupDisplayCap]
		}
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].ProductID < groups[b].ProductID
	})

	return models.DailyReport{Date: targetDate, Products: groups, Totals: dayTotals}
}

// Monthly folds details into YYYY-MM buckets, ordered most recent month
// first. Details whose date could not be parsed have no sortable key and are
// left out.
func Monthly(details []models.SaleDetail) []models.MonthlyReportEntry {
	buckets := make(map[string]models.PeriodTotals)
	for _, d := range details {
		if !d.SaleDate.Parsed {
			continue
		}
		key := d.SaleDate.SortKey[:7]
		t := buckets[key]
		t.TotalSellingPrice += d.TotalSellingPrice
		t.TotalPurchasePrice += d.TotalPurchasePrice
		t.TotalProfit += d.Profit
		buckets[key] = t
	}

	entries := make([]models.MonthlyReportEntry, 0, len(buckets))
	for _, key := range sortedKeysDesc(buckets) {
		entries = append(entries, models.MonthlyReportEntry{Month: key, Totals: buckets[key]})
	}
	return entries
}

// Yearly folds details into YYYY buckets, ordered most recent year first.
func Yearly(details []models.SaleDetail) []models.YearlyReportEntry {
	buckets := make(map[string]models.PeriodTotals)
	for _, d := range details {
		if !d.SaleDate.Parsed {
			continue
		}
		key := d.SaleDate.SortKey[:4]
		t := buckets[key]
		t.TotalSellingPrice += d.TotalSellingPrice
		t.TotalPurchasePrice += d.TotalPurchasePrice
		t.TotalProfit += d.Profit
		buckets[key] = t
	}

	entries := make([]models.YearlyReportEntry, 0, len(buckets))
	for _, key := range sortedKeysDesc(buckets) {
		entries = append(entries, models.YearlyReportEntry{Year: key, Totals: buckets[key]})
	}
	return entries
}

// Totals sums every detail into one bucket, the "Total Aggregates" row of
// the profit report.
func Totals(details []models.SaleDetail) models.PeriodTotals {
	var t models.PeriodTotals
	for _, d := range details {
		t.TotalSellingPrice += d.TotalSellingPrice
		t.TotalPurchasePrice += d.TotalPurchasePrice
		t.TotalProfit += d.Profit
	}
	return t
}

// ProfitRows flattens details into per-sale profit report lines, most recent
// sale first.
func ProfitRows(details []models.SaleDetail) []models.ProfitReportRow {
	rows := make([]models.ProfitReportRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, models.ProfitReportRow{
			SaleID:             d.SaleID,
			ProductID:          d.ProductID,
			ProductName:        d.ProductName,
			CategoryID:         d.CategoryID,
			SoldDate:           d.SaleDate.Display,
			TotalPurchasePrice: d.TotalPurchasePrice,
			TotalSellingPrice:  d.TotalSellingPrice,
			Profit:             d.Profit,
		})
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].SaleID > rows[b].SaleID })
	return rows
}
