package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoProducto classifies products. Products reference it with a protected
// foreign key: a tipo cannot be deleted while any Producto points at it.
type TipoProducto struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre            string    `gorm:"size:100;uniqueIndex;not null"`
	Descripcion       *string
	Activo            bool      `gorm:"not null;default:true"`
	FechaCreacion     time.Time `gorm:"autoCreateTime"`
	FechaModificacion time.Time `gorm:"autoUpdateTime"`

	Productos []Producto `gorm:"foreignKey:TipoProductoID"`
}

// TableName keeps the singular Spanish table names of the original schema.
func (TipoProducto) TableName() string { return "tipo_producto" }

// BeforeCreate assigns the UUID in the application so the same model works
// on engines without a uuid-generating default (sqlite in tests).
func (t *TipoProducto) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
