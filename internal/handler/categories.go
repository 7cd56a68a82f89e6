package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sofibear01/MantenimientoProducto/internal/apierror"
	"github.com/sofibear01/MantenimientoProducto/internal/dto"
	"github.com/sofibear01/MantenimientoProducto/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type CategoriesHandler struct {
	svc service.CategoryService
	log zerolog.Logger
}

func NewCategoriesHandler(svc service.CategoryService, log zerolog.Logger) *CategoriesHandler {
	return &CategoriesHandler{svc: svc, log: log.With().Str("entity", "product_category").Logger()}
}

func categoryID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return id, true
}

// List GET /api/productcategory
func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list categories failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al obtener las categorías."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /api/productcategory/:id
func (h *CategoriesHandler) GetByID(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	resp, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("category_id", id).Msg("get category failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al obtener la categoría."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/productcategory — the store assigns the key.
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("create category failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al crear la categoría."))
		return
	}
	c.Header("Location", "/api/productcategory/"+strconv.Itoa(resp.CategoryProductID))
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/productcategory/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("category_id", id).Msg("update category failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al actualizar la categoría."))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE /api/productcategory/:id — physical delete, blocked by the
// foreign key while any product still references the category.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Int("category_id", id).Msg("delete category failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al eliminar la categoría."))
		return
	}
	c.Status(http.StatusNoContent)
}
