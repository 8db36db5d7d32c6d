package handlers

import (
	"context"
	"encoding/json"
	"time"

	"app/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// loadProducts fetches the full product catalog. Report handlers treat the
// returned slice as an immutable snapshot for one aggregation pass.
func loadProducts(ctx context.Context, db *pgxpool.Pool) ([]models.Product, error) {
	query := `
		SELECT id, product_id, product_name, category_id, purchase_price, selling_price,
		       has_sizes, COALESCE(quantity, 0), size_quantities, subcategories, status,
		       created_at, updated_at
		FROM products
		ORDER BY product_id
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		var sizesRaw, subcatRaw []byte
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.ProductName, &p.CategoryID, &p.PurchasePrice, &p.SellingPrice,
			&p.HasSizes, &p.Quantity, &sizesRaw, &subcatRaw, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(sizesRaw) > 0 {
			_ = json.Unmarshal(sizesRaw, &p.SizeQuantities)
		}
		if len(subcatRaw) > 0 {
			_ = json.Unmarshal(subcatRaw, &p.Subcategories)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// loadSales fetches every sale. Dates come back as time.Time from the
// database; sales created by old clients may still carry the loose wire
// shapes when they arrive through the API instead.
func loadSales(ctx context.Context, db *pgxpool.Pool) ([]models.Sale, error) {
	query := `
		SELECT id, product_id, selling_price, discount, COALESCE(discount_kind, 'flat'),
		       quantity, size_quantities, sale_date, invoice_number, created_at, updated_at
		FROM sales
		ORDER BY id
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var s models.Sale
		var quantity *int
		var sizesRaw []byte
		var saleDate time.Time
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.SellingPrice, &s.Discount, &s.DiscountKind,
			&quantity, &sizesRaw, &saleDate, &s.InvoiceNumber, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if quantity != nil {
			s.Quantity = *quantity
		}
		if len(sizesRaw) > 0 {
			_ = json.Unmarshal(sizesRaw, &s.SizeQuantities)
		}
		s.SaleDate = saleDate
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
