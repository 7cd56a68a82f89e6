package model

import "time"

// ProductCategory groups products. Its key is store-generated. Deletes are
// physical and rejected by the foreign key from Product while any row still
// references the category (no cascade).
type ProductCategory struct {
	CategoryProductID   int    `gorm:"column:category_product_id;primaryKey;autoIncrement"`
	CategoryDescription string `gorm:"column:category_description;size:200;not null"`
	IsActive            string `gorm:"column:is_active;type:char(1);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProductCategory) TableName() string { return "ProductCategory" }
