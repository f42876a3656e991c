package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearTipoProductoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type ActualizarTipoProductoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// ── Filters ───────────────────────────────────────────────────────────────────

// CatalogoFilter carries the search/ordering query params shared by the
// tipo_producto and proveedor list endpoints.
type CatalogoFilter struct {
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type TipoProductoResponse struct {
	ID                uuid.UUID `json:"id"`
	Nombre            string    `json:"nombre"`
	Descripcion       *string   `json:"descripcion"`
	Activo            bool      `json:"activo"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}
