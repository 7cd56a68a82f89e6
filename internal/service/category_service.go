package service

import (
	"context"

	"github.com/sofibear01/MantenimientoProducto/internal/dto"
	"github.com/sofibear01/MantenimientoProducto/internal/model"
	"github.com/sofibear01/MantenimientoProducto/internal/repository"
)

// CategoryService defines the business operations for product categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	FindByID(ctx context.Context, id int) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateCategoryRequest) error
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.ProductCategory) dto.CategoryResponse {
	return dto.CategoryResponse{
		CategoryProductID:   c.CategoryProductID,
		CategoryDescription: c.CategoryDescription,
		IsActive:            c.IsActive,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.ProductCategory{
		CategoryDescription: req.CategoryDescription,
		IsActive:            req.IsActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, translateStoreError(err)
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) FindByID(ctx context.Context, id int) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err)
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, id int, req dto.UpdateCategoryRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateStoreError(err)
	}
	c := &model.ProductCategory{
		CategoryProductID:   id,
		CategoryDescription: req.CategoryDescription,
		IsActive:            req.IsActive,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return translateStoreError(err)
	}
	return nil
}

// Delete removes the category physically. The store rejects it while any
// product still references the row; that surfaces as ErrReferenceViolated
// and the category remains.
func (s *categoryService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateStoreError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateStoreError(err)
	}
	return nil
}
