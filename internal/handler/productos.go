package handler

import (
	"net/http"

	"distribuidora/internal/apierror"
	"distribuidora/internal/dto"
	"distribuidora/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc        service.ProductoService
	vinculoSvc service.ProductoProveedorService
}

func NewProductosHandler(svc service.ProductoService, vinculoSvc service.ProductoProveedorService) *ProductosHandler {
	return &ProductosHandler{svc: svc, vinculoSvc: vinculoSvc}
}

// Listar GET /productos/?clave=&tipo_producto=&activo=&search=&ordering=
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
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

// Crear POST /productos/ — creates the product together with its proveedores.
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// Obtener GET /productos/:id/
func (h *ProductosHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT/PATCH /productos/:id/ — partial update; a supplied
// "proveedores" array replaces the whole link set.
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
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

// Eliminar DELETE /productos/:id/ — cascades to the product's links.
func (h *ProductosHandler) Eliminar(c *gin.Context) {
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

// ── Association sub-API ──────────────────────────────────────────────────────

// Proveedores GET /productos/:id/proveedores/ — active links only.
func (h *ProductosHandler) Proveedores(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.vinculoSvc.ListarPorProducto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarProveedor POST /productos/:id/agregar_proveedor/
func (h *ProductosHandler) AgregarProveedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.vinculoSvc.AgregarProveedor(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EliminarProveedor DELETE /productos/:id/eliminar_proveedor/:proveedor_id/
func (h *ProductosHandler) EliminarProveedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	proveedorID, ok := parseID(c, "proveedor_id")
	if !ok {
		return
	}
	if err := h.vinculoSvc.EliminarProveedor(c.Request.Context(), id, proveedorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
