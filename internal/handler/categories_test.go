package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sofibear01/MantenimientoProducto/internal/dto"
	"github.com/sofibear01/MantenimientoProducto/internal/handler"
	"github.com/sofibear01/MantenimientoProducto/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategoryService struct {
	calls     int
	findErr   error
	updateErr error
	deleteErr error
}

func (s *stubCategoryService) Create(_ context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	s.calls++
	return &dto.CategoryResponse{
		CategoryProductID:   1,
		CategoryDescription: req.CategoryDescription,
		IsActive:            req.IsActive,
	}, nil
}

func (s *stubCategoryService) FindByID(_ context.Context, id int) (*dto.CategoryResponse, error) {
	s.calls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &dto.CategoryResponse{CategoryProductID: id, CategoryDescription: "Bebidas", IsActive: "Y"}, nil
}

func (s *stubCategoryService) List(_ context.Context) ([]dto.CategoryResponse, error) {
	s.calls++
	return []dto.CategoryResponse{}, nil
}

func (s *stubCategoryService) Update(_ context.Context, _ int, _ dto.UpdateCategoryRequest) error {
	s.calls++
	return s.updateErr
}

func (s *stubCategoryService) Delete(_ context.Context, _ int) error {
	s.calls++
	return s.deleteErr
}

func categoryRouter(svc service.CategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewCategoriesHandler(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/api/productcategory", h.List)
	r.GET("/api/productcategory/:id", h.GetByID)
	r.POST("/api/productcategory", h.Create)
	r.PUT("/api/productcategory/:id", h.Update)
	r.DELETE("/api/productcategory/:id", h.Delete)
	return r
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCreateCategoryReturns201WithLocation(t *testing.T) {
	svc := &stubCategoryService{}
	body := map[string]any{"categoryDescription": "Bebidas", "isActive": "Y"}

	w := doJSON(t, categoryRouter(svc), http.MethodPost, "/api/productcategory", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/productcategory/1", w.Header().Get("Location"))

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CategoryProductID)
	assert.Equal(t, "Bebidas", resp.CategoryDescription)
}

func TestCreateCategoryValidation(t *testing.T) {
	cases := []map[string]any{
		{"isActive": "Y"},                                  // missing description
		{"categoryDescription": "Bebidas", "isActive": "S"}, // flag outside Y/N
	}
	for _, body := range cases {
		svc := &stubCategoryService{}
		w := doJSON(t, categoryRouter(svc), http.MethodPost, "/api/productcategory", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.calls)
	}
}

func TestCategoryMalformedIDIs400(t *testing.T) {
	svc := &stubCategoryService{}
	w := doJSON(t, categoryRouter(svc), http.MethodGet, "/api/productcategory/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestGetCategoryNotFoundHasEmptyBody(t *testing.T) {
	svc := &stubCategoryService{findErr: service.ErrNotFound}
	w := doJSON(t, categoryRouter(svc), http.MethodGet, "/api/productcategory/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteCategoryReturns204(t *testing.T) {
	svc := &stubCategoryService{}
	w := doJSON(t, categoryRouter(svc), http.MethodDelete, "/api/productcategory/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteReferencedCategoryIs500(t *testing.T) {
	svc := &stubCategoryService{deleteErr: service.ErrReferenceViolated}
	w := doJSON(t, categoryRouter(svc), http.MethodDelete, "/api/productcategory/1", nil)

	// Referential rejections are storage-layer constraint faults, reported
	// with the same generic envelope as any other persistence failure.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestUpdateCategoryReturns204(t *testing.T) {
	svc := &stubCategoryService{}
	body := map[string]any{"categoryDescription": "Limpieza", "isActive": "N"}

	w := doJSON(t, categoryRouter(svc), http.MethodPut, "/api/productcategory/1", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
