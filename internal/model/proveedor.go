package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proveedor is an external vendor. It never references products directly:
// the relation lives in ProductoProveedor, and deleting a proveedor is
// blocked while any of those rows reference it.
type Proveedor struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre            string    `gorm:"size:200;uniqueIndex;not null"`
	Descripcion       *string
	Activo            bool      `gorm:"not null;default:true"`
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	ProveedorProductos []ProductoProveedor `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedor" }

func (p *Proveedor) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
