package service

import (
	"context"
	"errors"

	"github.com/sofibear01/MantenimientoProducto/internal/dto"
	"github.com/sofibear01/MantenimientoProducto/internal/model"
	"github.com/sofibear01/MantenimientoProducto/internal/repository"

	"gorm.io/gorm"
)

// ProductService defines the business operations for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	FindByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) error
	Deactivate(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// translateStoreError maps GORM's translated errors onto the service
// sentinels. Anything unrecognized passes through as a storage fault.
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenceViolated
	default:
		return err
	}
}

// mapProduct converts a model row into a response. The category snapshot is
// only attached when the join actually resolved it (zero key means no join).
func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ProductID:          p.ProductID,
		CategoryProductID:  p.CategoryProductID,
		ProductDescription: p.ProductDescription,
		Stock:              p.Stock,
		Price:              p.Price,
		HaveEcDiscount:     p.HaveEcDiscount,
		IsActive:           p.IsActive,
	}
	if p.Category.CategoryProductID != 0 {
		resp.Category = &dto.CategorySnapshot{
			CategoryProductID:   p.Category.CategoryProductID,
			CategoryDescription: p.Category.CategoryDescription,
			IsActive:            p.Category.IsActive,
		}
	}
	return resp
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		ProductID:          req.ProductID,
		CategoryProductID:  req.CategoryProductID,
		ProductDescription: req.ProductDescription,
		Stock:              req.Stock,
		Price:              req.Price,
		HaveEcDiscount:     req.HaveEcDiscount,
		IsActive:           req.IsActive,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, translateStoreError(err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) FindByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

// Update overwrites description, stock, price and the two flags of an
// existing product. The id in the path wins; the stored category reference
// stays untouched.
func (s *productService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateStoreError(err)
	}
	p := &model.Product{
		ProductID:          id,
		ProductDescription: req.ProductDescription,
		Stock:              req.Stock,
		Price:              req.Price,
		HaveEcDiscount:     req.HaveEcDiscount,
		IsActive:           req.IsActive,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return translateStoreError(err)
	}
	return nil
}

// Deactivate is the logical delete: the row persists with is_active = "N".
// Deactivating an already-inactive product succeeds silently.
func (s *productService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateStoreError(err)
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return translateStoreError(err)
	}
	return nil
}
