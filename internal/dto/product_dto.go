package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	ProductID          string          `json:"productId"          validate:"required,max=30"`
	CategoryProductID  int             `json:"categoryProductId"  validate:"required"`
	ProductDescription string          `json:"productDescription" validate:"required,max=200"`
	Stock              int             `json:"stock"              validate:"min=0"`
	Price              decimal.Decimal `json:"price"              validate:"gt=0"`
	HaveEcDiscount     string          `json:"haveEcDiscount"     validate:"required,oneof=Y N"`
	IsActive           string          `json:"isActive"           validate:"required,oneof=Y N"`
}

// UpdateProductRequest carries the mutable fields only. The natural key and
// the category reference are fixed at creation time and cannot be overwritten.
// Setting isActive back to "Y" on a deactivated product is allowed — this is
// the only reactivation path.
type UpdateProductRequest struct {
	ProductDescription string          `json:"productDescription" validate:"required,max=200"`
	Stock              int             `json:"stock"              validate:"min=0"`
	Price              decimal.Decimal `json:"price"              validate:"gt=0"`
	HaveEcDiscount     string          `json:"haveEcDiscount"     validate:"required,oneof=Y N"`
	IsActive           string          `json:"isActive"           validate:"required,oneof=Y N"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CategorySnapshot is the joined category as seen from a product response:
// a detached copy taken at read time, not a live navigation reference.
type CategorySnapshot struct {
	CategoryProductID   int    `json:"categoryProductId"`
	CategoryDescription string `json:"categoryDescription"`
	IsActive            string `json:"isActive"`
}

type ProductResponse struct {
	ProductID          string            `json:"productId"`
	CategoryProductID  int               `json:"categoryProductId"`
	ProductDescription string            `json:"productDescription"`
	Stock              int               `json:"stock"`
	Price              decimal.Decimal   `json:"price"`
	HaveEcDiscount     string            `json:"haveEcDiscount"`
	IsActive           string            `json:"isActive"`
	Category           *CategorySnapshot `json:"category,omitempty"`
}
