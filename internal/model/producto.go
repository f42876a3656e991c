package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Producto is the catalog entry. Its suppliers are reachable only through
// ProductoProveedor rows, which the product owns: deleting a producto
// cascades to its links, while the tipo_producto reference is protected.
type Producto struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Clave             string    `gorm:"size:50;uniqueIndex;not null"`
	Nombre            string    `gorm:"size:200;not null"`
	TipoProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Activo            bool      `gorm:"not null;default:true"`
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	TipoProducto        *TipoProducto       `gorm:"foreignKey:TipoProductoID;constraint:OnDelete:RESTRICT"`
	ProductoProveedores []ProductoProveedor `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (Producto) TableName() string { return "producto" }

func (p *Producto) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
