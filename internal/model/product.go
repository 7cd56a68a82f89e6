package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row keyed by a client-supplied natural id of up to 30
// characters. The id never changes after creation. IsActive drives logical
// delete: rows are flagged "N" instead of being removed.
type Product struct {
	ProductID          string          `gorm:"column:product_id;primaryKey;size:30"`
	CategoryProductID  int             `gorm:"column:category_product_id;not null"`
	ProductDescription string          `gorm:"column:product_description;size:200;not null"`
	Stock              int             `gorm:"column:stock;not null;default:0"`
	Price              decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	HaveEcDiscount     string          `gorm:"column:have_ec_discount;type:char(1);not null"`
	IsActive           string          `gorm:"column:is_active;type:char(1);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Category is filled by an explicit join on reads; it is a detached
	// value, never a live back-reference (ProductCategory holds no product
	// collection, so there is no cycle between the two types).
	Category ProductCategory `gorm:"foreignKey:CategoryProductID;references:CategoryProductID"`
}

// TableName keeps the original schema's singular PascalCase table name.
func (Product) TableName() string { return "Product" }
