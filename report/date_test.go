package report

import (
	"testing"
	"time"
)

func TestParseSaleDateShapesAgree(t *testing.T) {
	shapes := []interface{}{
		"2024-05-01T10:00:00Z",
		"2024-05-01",
		[]interface{}{float64(2024), float64(5), float64(1)},
		map[string]interface{}{"year": float64(2024), "month": float64(5), "day": float64(1)},
		time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	for _, raw := range shapes {
		date, err := ParseSaleDate(raw)
		if err != nil {
			t.Fatalf("ParseSaleDate(%v) returned error: %v", raw, err)
		}
		if date.Display != "05/01/2024" {
			t.Fatalf("ParseSaleDate(%v) display = %q, want 05/01/2024", raw, date.Display)
		}
		if date.SortKey != "2024-05-01" {
			t.Fatalf("ParseSaleDate(%v) sort key = %q, want 2024-05-01", raw, date.SortKey)
		}
		if !date.Parsed {
			t.Fatalf("ParseSaleDate(%v) not flagged as parsed", raw)
		}
	}
}

func TestParseSaleDateUnknownShape(t *testing.T) {
	date, err := ParseSaleDate(42.5)
	if err == nil {
		t.Fatalf("expected error for unknown date shape")
	}
	if date.Parsed {
		t.Fatalf("unknown shape must be flagged unparsed")
	}
	if date.Display == "" {
		t.Fatalf("expected best-effort stringification, got empty display")
	}
}

func TestParseSaleDateMalformedString(t *testing.T) {
	date, err := ParseSaleDate("not-a-date")
	if err == nil {
		t.Fatalf("expected error for malformed date string")
	}
	if date.Parsed || date.Display != "not-a-date" {
		t.Fatalf("malformed string should be carried through unparsed, got %+v", date)
	}
}
