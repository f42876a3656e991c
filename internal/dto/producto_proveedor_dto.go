package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoProveedorRequest feeds POST /productos-proveedores/, where the
// producto comes in the body instead of the URL.
type CrearProductoProveedorRequest struct {
	Producto       string          `json:"producto"        validate:"required,uuid"`
	Proveedor      string          `json:"proveedor"       validate:"required,uuid"`
	ClaveProveedor string          `json:"clave_proveedor" validate:"required,max=100"`
	Costo          decimal.Decimal `json:"costo"           validate:"required"`
	Activo         *bool           `json:"activo"`
}

// AgregarProveedorRequest feeds POST /productos/{id}/agregar_proveedor/.
type AgregarProveedorRequest struct {
	Proveedor      string          `json:"proveedor"       validate:"required,uuid"`
	ClaveProveedor string          `json:"clave_proveedor" validate:"required,max=100"`
	Costo          decimal.Decimal `json:"costo"           validate:"required"`
	Activo         *bool           `json:"activo"`
}

type ActualizarProductoProveedorRequest struct {
	Proveedor      *string          `json:"proveedor"       validate:"omitempty,uuid"`
	ClaveProveedor *string          `json:"clave_proveedor" validate:"omitempty,min=1,max=100"`
	Costo          *decimal.Decimal `json:"costo"`
	Activo         *bool            `json:"activo"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

type ProductoProveedorFilter struct {
	Producto  string `form:"producto"`
	Proveedor string `form:"proveedor"`
	Ordering  string `form:"ordering"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoProveedorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Proveedor       uuid.UUID       `json:"proveedor"`
	ProveedorNombre string          `json:"proveedor_nombre"`
	ClaveProveedor  string          `json:"clave_proveedor"`
	Costo           decimal.Decimal `json:"costo"`
	Activo          bool            `json:"activo"`
}
