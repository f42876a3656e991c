package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProveedorProductoInput is one entry of the "proveedores" array in the
// composite product write path: which proveedor offers the product, under
// which clave, and at what cost.
type ProveedorProductoInput struct {
	Proveedor      string          `json:"proveedor"       validate:"required,uuid"`
	ClaveProveedor string          `json:"clave_proveedor" validate:"required,max=100"`
	Costo          decimal.Decimal `json:"costo"           validate:"required"`
	Activo         *bool           `json:"activo"`
}

type CrearProductoRequest struct {
	Clave        string                   `json:"clave"         validate:"required,min=1,max=50"`
	Nombre       string                   `json:"nombre"        validate:"required,min=1,max=200"`
	TipoProducto string                   `json:"tipo_producto" validate:"required,uuid"`
	Activo       *bool                    `json:"activo"`
	Proveedores  []ProveedorProductoInput `json:"proveedores"   validate:"omitempty,dive"`
}

type ActualizarProductoRequest struct {
	Clave        *string `json:"clave"         validate:"omitempty,min=1,max=50"`
	Nombre       *string `json:"nombre"        validate:"omitempty,min=1,max=200"`
	TipoProducto *string `json:"tipo_producto" validate:"omitempty,uuid"`
	Activo       *bool   `json:"activo"`
	// Proveedores distinguishes "omitted" (nil: keep current links) from
	// "present but empty" (replace the link set with nothing).
	Proveedores *[]ProveedorProductoInput `json:"proveedores" validate:"omitempty,dive"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

type ProductoFilter struct {
	Clave        string `form:"clave"`
	TipoProducto string `form:"tipo_producto"`
	Activo       *bool  `form:"activo"`
	Search       string `form:"search"`
	Ordering     string `form:"ordering"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoListItem is the simplified list projection: instead of embedding
// the links it carries their active count and the minimum active cost.
type ProductoListItem struct {
	ID                  uuid.UUID        `json:"id"`
	Clave               string           `json:"clave"`
	Nombre              string           `json:"nombre"`
	TipoProducto        uuid.UUID        `json:"tipo_producto"`
	TipoProductoNombre  string           `json:"tipo_producto_nombre"`
	CantidadProveedores int              `json:"cantidad_proveedores"`
	CostoMinimo         *decimal.Decimal `json:"costo_minimo"`
	Activo              bool             `json:"activo"`
}

type ProductoDetailResponse struct {
	ID                 uuid.UUID                   `json:"id"`
	Clave              string                      `json:"clave"`
	Nombre             string                      `json:"nombre"`
	TipoProducto       uuid.UUID                   `json:"tipo_producto"`
	TipoProductoNombre string                      `json:"tipo_producto_nombre"`
	ProveedoresDetalle []ProductoProveedorResponse `json:"proveedores_detalle"`
	Activo             bool                        `json:"activo"`
	FechaCreacion      time.Time                   `json:"fecha_creacion"`
	FechaModificacion  time.Time                   `json:"fecha_modificacion"`
}
