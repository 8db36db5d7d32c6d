// Package report is the sales aggregation and reporting engine. It is a pure
// computation over in-memory snapshots of products and sales: normalization
// of the wire's loose date and quantity shapes, daily/monthly/yearly
// groupings, top-seller ranking, and invoice totals. Every view that needs a
// report calls into this one package instead of re-deriving the numbers.
package report

import (
	"fmt"
	"strings"
	"time"

	"app/models"
)

const (
	displayDateLayout = "01/02/2006"
	sortKeyLayout     = "2006-01-02"
)

// saleDateLayouts are the string formats historical clients have sent.
var saleDateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	sortKeyLayout,
	displayDateLayout,
}

// ParseSaleDate canonicalizes the raw saleDate value of a sale. Accepted
// shapes: ISO-8601 string (date portion taken), [year, month, day] array,
// {year, month, day} object, or time.Time. Anything else is stringified
// best-effort with Parsed=false; the returned error is informational and
// never fatal to a report run.
func ParseSaleDate(raw interface{}) (models.CanonicalDate, error) {
	switch v := raw.(type) {
	case time.Time:
		return canonical(v), nil
	case string:
		s := strings.TrimSpace(v)
		if i := strings.IndexByte(s, 'T'); i > 0 {
			if t, err := parseDateString(s); err == nil {
				return canonical(t), nil
			}
			s = s[:i]
		}
		if t, err := parseDateString(s); err == nil {
			return canonical(t), nil
		}
		return unparsed(v), fmt.Errorf("unrecognized date string %q", v)
	case []interface{}:
		if len(v) >= 3 {
			year, okY := toInt(v[0])
			month, okM := toInt(v[1])
			day, okD := toInt(v[2])
			if okY && okM && okD {
				return canonical(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)), nil
			}
		}
		return unparsed(v), fmt.Errorf("unrecognized date array %v", v)
	case map[string]interface{}:
		year, okY := toInt(v["year"])
		month, okM := toInt(v["month"])
		day, okD := toInt(v["day"])
		if okY && okM && okD {
			return canonical(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)), nil
		}
		return unparsed(v), fmt.Errorf("unrecognized date object %v", v)
	case nil:
		return unparsed(""), fmt.Errorf("missing sale date")
	default:
		return unparsed(v), fmt.Errorf("unrecognized date shape %T", raw)
	}
}

func parseDateString(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

func canonical(t time.Time) models.CanonicalDate {
	return models.CanonicalDate{
		Display: t.Format(displayDateLayout),
		SortKey: t.Format(sortKeyLayout),
		Parsed:  true,
	}
}

func unparsed(raw interface{}) models.CanonicalDate {
	return models.CanonicalDate{Display: fmt.Sprint(raw), Parsed: false}
}
