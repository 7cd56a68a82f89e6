package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	CategoryDescription string `json:"categoryDescription" validate:"required,max=200"`
	IsActive            string `json:"isActive"            validate:"required,oneof=Y N"`
}

type UpdateCategoryRequest struct {
	CategoryDescription string `json:"categoryDescription" validate:"required,max=200"`
	IsActive            string `json:"isActive"            validate:"required,oneof=Y N"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	CategoryProductID   int    `json:"categoryProductId"`
	CategoryDescription string `json:"categoryDescription"`
	IsActive            string `json:"isActive"`
}
