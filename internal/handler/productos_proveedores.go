package handler

import (
	"net/http"

	"distribuidora/internal/apierror"
	"distribuidora/internal/dto"
	"distribuidora/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosProveedoresHandler struct{ svc service.ProductoProveedorService }

func NewProductosProveedoresHandler(svc service.ProductoProveedorService) *ProductosProveedoresHandler {
	return &ProductosProveedoresHandler{svc: svc}
}

// Listar GET /productos-proveedores/?producto=&proveedor=&ordering=
func (h *ProductosProveedoresHandler) Listar(c *gin.Context) {
	var filter dto.ProductoProveedorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewEnvelope("Parámetros de consulta inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /productos-proveedores/
func (h *ProductosProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener GET /productos-proveedores/:id/
func (h *ProductosProveedoresHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT/PATCH /productos-proveedores/:id/
func (h *ProductosProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /productos-proveedores/:id/
func (h *ProductosProveedoresHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
