package repository

import (
	"context"

	"github.com/sofibear01/MantenimientoProducto/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines CRUD operations for ProductCategory.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.ProductCategory) error
	FindByID(ctx context.Context, id int) (*model.ProductCategory, error)
	List(ctx context.Context) ([]model.ProductCategory, error)
	Update(ctx context.Context, c *model.ProductCategory) error
	Delete(ctx context.Context, id int) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id int) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := r.db.WithContext(ctx).First(&c, "category_product_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.ProductCategory, error) {
	var list []model.ProductCategory
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}

// Update overwrites description and flag; the generated key is immutable.
func (r *categoryRepo) Update(ctx context.Context, c *model.ProductCategory) error {
	return r.db.WithContext(ctx).Model(&model.ProductCategory{}).
		Where("category_product_id = ?", c.CategoryProductID).
		Updates(map[string]interface{}{
			"category_description": c.CategoryDescription,
			"is_active":            c.IsActive,
		}).Error
}

// Delete removes the row physically. The FK from Product has no cascade, so
// Postgres rejects the delete (gorm.ErrForeignKeyViolated) while any product
// still references the category.
func (r *categoryRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Where("category_product_id = ?", id).
		Delete(&model.ProductCategory{}).Error
}
