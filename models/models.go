package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &j)
}

// --- Core Models ---

// Product stock status values.
const (
	ProductInStock  = "IN_STOCK"
	ProductReturned = "RETURNED"
)

// SizeQuantity is one size bucket of a sized product's stock.
type SizeQuantity struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Product represents an item in the shop's catalog.
// Exactly one of SizeQuantities / Quantity is the authoritative stock source,
// selected by HasSizes.
type Product struct {
	ID             int64          `json:"-"`
	ProductID      string         `json:"productId"`
	ProductName    string         `json:"productName"`
	CategoryID     string         `json:"categoryId"`
	PurchasePrice  float64        `json:"purchasePrice"`
	SellingPrice   float64        `json:"sellingPrice"`
	HasSizes       bool           `json:"hasSizes"`
	SizeQuantities []SizeQuantity `json:"sizeQuantities,omitempty"`
	Quantity       int            `json:"quantity,omitempty"`
	Status         string         `json:"status"`
	Subcategories  JSONB          `json:"subcategories,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Discount conventions carried by a sale. Flat is a currency amount
// subtracted from the line total; percent is applied to the line total.
const (
	DiscountFlat    = "flat"
	DiscountPercent = "percent"
)

// Sale represents a single transaction as it arrives on the wire.
// Quantity and SaleDate are deliberately loose: historical clients send
// quantity as a number or a string, and saleDate as an ISO string, a
// [year, month, day] array, or a {year, month, day} object. The report
// package owns turning these into uniform values.
type Sale struct {
	ID             int64                  `json:"id"`
	ProductID      string                 `json:"productId"`
	SellingPrice   float64                `json:"sellingPrice"`
	Discount       float64                `json:"discount"`
	DiscountKind   string                 `json:"discountKind,omitempty"`
	Quantity       interface{}            `json:"quantity,omitempty"`
	SizeQuantities map[string]interface{} `json:"sizeQuantities,omitempty"`
	SaleDate       interface{}            `json:"saleDate"`
	InvoiceNumber  *string                `json:"invoiceNumber,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// SaleWithProduct is a sale joined with its product's display fields,
// as served by GET /api/sales.
type SaleWithProduct struct {
	Sale
	ProductName       string  `json:"productName"`
	CategoryID        string  `json:"categoryId"`
	Subcategories     JSONB   `json:"subcategories,omitempty"`
	TotalSellingPrice float64 `json:"totalSellingPrice"`
}

// Return condition values. The condition decides how stock is adjusted when
// the return is recorded.
const (
	ReturnAddProductQuantity    = "ADD_PRODUCT_QUANTITY"
	ReturnDeductSaleQuantity    = "DEDUCT_SALE_QUANTITY"
	ReturnDeductProductQuantity = "DEDUCT_PRODUCT_QUANTITY"
)

// Return is an append-only audit record of a returned item. Once created,
// only ReturnedDate transitions (null until the return is fulfilled).
type Return struct {
	ID             int64          `json:"id"`
	ProductID      string         `json:"productId"`
	SaleID         *int64         `json:"saleId,omitempty"`
	ReturnDate     time.Time      `json:"returnDate"`
	ReturnedDate   *time.Time     `json:"returnedDate,omitempty"`
	Reason         string         `json:"reason"`
	SizeQuantities map[string]int `json:"sizeQuantities,omitempty"`
	Condition      string         `json:"condition"`
	CreatedAt      time.Time      `json:"created_at"`
}

// InventoryItem is a standalone stockroom item tracked outside the product
// catalog: consumables, packaging, cleaning supplies. It carries no sizes
// and never feeds the sales reports.
type InventoryItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"inventoryName"`
	Description  *string   `json:"inventoryDescription,omitempty"`
	Category     string    `json:"inventoryCategory"`
	UnitPrice    float64   `json:"inventoryUnitPrice"`
	Quantity     int       `json:"inventoryQuantity"`
	SupplierName *string   `json:"supplierName,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category groups products.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Supplier provides products to the shop.
type Supplier struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BrandName    *string   `json:"brandName,omitempty"`
	ContactName  *string   `json:"contactName,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Employee represents a staff member of the shop. The password is stored
// bcrypt-hashed and never serialized.
type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SalaryPayment records one salary payment to an employee.
type SalaryPayment struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
	Notes       *string   `json:"notes,omitempty"`
}

// --- API Request Structs ---

// CreateSaleRequest defines the body for recording a new sale.
type CreateSaleRequest struct {
	ProductID      string         `json:"productId"`
	Quantity       *int           `json:"quantity,omitempty"`
	SizeQuantities map[string]int `json:"sizeQuantities,omitempty"`
	Discount       float64        `json:"discount"`
	DiscountKind   string         `json:"discountKind,omitempty"`
}

// CreateReturnRequest defines the body for recording a return.
type CreateReturnRequest struct {
	ProductID      string         `json:"productId"`
	SaleID         *int64         `json:"saleId,omitempty"`
	Reason         string         `json:"reason"`
	SizeQuantities map[string]int `json:"sizeQuantities,omitempty"`
	Condition      string         `json:"condition"`
}

// CreateEmployeeRequest defines the body for creating a new employee.
type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	Password string  `json:"password"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedSalesResponse for sales history.
type PaginatedSalesResponse struct {
	Data       []SaleWithProduct `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// PaginatedProductsResponse for the product catalog.
type PaginatedProductsResponse struct {
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
