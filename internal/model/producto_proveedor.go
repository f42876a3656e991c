package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoProveedor records that a proveedor offers a producto under its own
// clave and at a given cost. The (producto, proveedor) pair is unique at the
// schema level so concurrent inserts cannot produce two rows for one pair.
type ProductoProveedor struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductoID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_producto_proveedor"`
	ProveedorID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_producto_proveedor"`
	ClaveProveedor    string          `gorm:"size:100;not null"`
	Costo             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Activo            bool            `gorm:"not null;default:true"`
	FechaCreacion     time.Time       `gorm:"autoCreateTime"`
	FechaModificacion time.Time       `gorm:"autoUpdateTime"`

	Producto  *Producto  `gorm:"foreignKey:ProductoID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:RESTRICT"`
}

func (ProductoProveedor) TableName() string { return "producto_proveedor" }

func (pp *ProductoProveedor) BeforeCreate(*gorm.DB) error {
	if pp.ID == uuid.Nil {
		pp.ID = uuid.New()
	}
	return nil
}
