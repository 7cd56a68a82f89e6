package handler

import (
	"errors"
	"net/http"

	"github.com/sofibear01/MantenimientoProducto/internal/apierror"
	"github.com/sofibear01/MantenimientoProducto/internal/dto"
	"github.com/sofibear01/MantenimientoProducto/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ProductsHandler struct {
	svc service.ProductService
	log zerolog.Logger
}

func NewProductsHandler(svc service.ProductService, log zerolog.Logger) *ProductsHandler {
	return &ProductsHandler{svc: svc, log: log.With().Str("entity", "product").Logger()}
}

// List GET /api/products
func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list products failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al obtener los productos."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /api/products/:id
func (h *ProductsHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("get product failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al obtener el producto."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		// Duplicate ids and dangling category references are storage-layer
		// constraint faults, reported like any other persistence failure.
		h.log.Error().Err(err).Str("product_id", req.ProductID).Msg("create product failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al crear el producto."))
		return
	}
	c.Header("Location", "/api/products/"+resp.ProductID)
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("update product failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al actualizar el producto."))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate DELETE /api/products/:id — logical delete, the row persists.
func (h *ProductsHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("product_id", id).Msg("deactivate product failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Ocurrió un error al eliminar el producto."))
		return
	}
	c.Status(http.StatusNoContent)
}
