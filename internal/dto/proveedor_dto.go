package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type ActualizarProveedorRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID                uuid.UUID `json:"id"`
	Nombre            string    `json:"nombre"`
	Descripcion       *string   `json:"descripcion"`
	Activo            bool      `json:"activo"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}
