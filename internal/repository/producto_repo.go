package repository

import (
	"context"

	"distribuidora/internal/dto"
	"distribuidora/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines data access for products. Read operations
// preload the tipo_producto and the producto_proveedor rows with their
// proveedor in a bounded number of queries — callers never traverse
// relations lazily.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	CrearTx(tx *gorm.DB, p *model.Producto) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	ObtenerPorClave(ctx context.Context, clave string) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	ActualizarTx(tx *gorm.DB, p *model.Producto) error
	EliminarTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

var productoOrdering = map[string]string{
	"clave":          "clave",
	"nombre":         "nombre",
	"fecha_creacion": "fecha_creacion",
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) CrearTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Create(p).Error
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("TipoProducto").
		Preload("ProductoProveedores.Proveedor").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) ObtenerPorClave(ctx context.Context, clave string) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	var productos []model.Producto

	q := r.db.WithContext(ctx).Model(&model.Producto{}).
		Preload("TipoProducto").
		Preload("ProductoProveedores")

	if filter.Clave != "" {
		q = q.Where("LOWER(clave) LIKE LOWER(?)", "%"+filter.Clave+"%")
	}
	if filter.TipoProducto != "" {
		q = q.Where("tipo_producto_id = ?", filter.TipoProducto)
	}
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(clave) LIKE LOWER(?) OR LOWER(nombre) LIKE LOWER(?)", pattern, pattern)
	}

	err := q.Order(BuildOrder(filter.Ordering, productoOrdering, "clave ASC")).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) ActualizarTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Save(p).Error
}

func (r *productoRepo) EliminarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
