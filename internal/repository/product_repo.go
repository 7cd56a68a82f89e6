package repository

import (
	"context"

	"github.com/sofibear01/MantenimientoProducto/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing via in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Deactivate(ctx context.Context, id string) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	// Omit the association so a dangling category_product_id reaches the FK
	// and comes back as gorm.ErrForeignKeyViolated instead of being upserted.
	return r.db.WithContext(ctx).Omit("Category").Create(p).Error
}

// FindByID resolves the category with a single joined query.
func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Joins("Category").
		First(&p, `"Product".product_id = ?`, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every product (active or not) in insertion order, each with
// its category resolved by an eager join rather than N+1 lookups.
func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Joins("Category").
		Order(`"Product".created_at asc`).Find(&list).Error
	return list, err
}

// Update overwrites the mutable columns only; product_id and
// category_product_id are never touched after creation.
func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", p.ProductID).
		Updates(map[string]interface{}{
			"product_description": p.ProductDescription,
			"stock":               p.Stock,
			"price":               p.Price,
			"have_ec_discount":    p.HaveEcDiscount,
			"is_active":           p.IsActive,
		}).Error
}

// Deactivate flips is_active to "N" without removing the row. Running it on
// an already-inactive product is a harmless no-op at the SQL level.
func (r *productRepo) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", id).
		Update("is_active", "N").Error
}
