package repository

import (
	"context"

	"distribuidora/internal/dto"
	"distribuidora/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoProveedorRepository interface {
	Crear(ctx context.Context, pp *model.ProductoProveedor) error
	CrearTx(tx *gorm.DB, pp *model.ProductoProveedor) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ProductoProveedor, error)
	ObtenerPorPar(ctx context.Context, productoID, proveedorID uuid.UUID) (*model.ProductoProveedor, error)
	Listar(ctx context.Context, filter dto.ProductoProveedorFilter) ([]model.ProductoProveedor, error)
	ListarPorProducto(ctx context.Context, productoID uuid.UUID, soloActivos bool) ([]model.ProductoProveedor, error)
	Actualizar(ctx context.Context, pp *model.ProductoProveedor) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	EliminarPorProductoTx(tx *gorm.DB, productoID uuid.UUID) error
}

var productoProveedorOrdering = map[string]string{
	"costo":          "producto_proveedor.costo",
	"fecha_creacion": "producto_proveedor.fecha_creacion",
}

type productoProveedorRepo struct{ db *gorm.DB }

func NewProductoProveedorRepository(db *gorm.DB) ProductoProveedorRepository {
	return &productoProveedorRepo{db: db}
}

func (r *productoProveedorRepo) Crear(ctx context.Context, pp *model.ProductoProveedor) error {
	return r.db.WithContext(ctx).Create(pp).Error
}

func (r *productoProveedorRepo) CrearTx(tx *gorm.DB, pp *model.ProductoProveedor) error {
	return tx.Create(pp).Error
}

func (r *productoProveedorRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ProductoProveedor, error) {
	var pp model.ProductoProveedor
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		First(&pp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pp, nil
}

func (r *productoProveedorRepo) ObtenerPorPar(ctx context.Context, productoID, proveedorID uuid.UUID) (*model.ProductoProveedor, error) {
	var pp model.ProductoProveedor
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND proveedor_id = ?", productoID, proveedorID).
		First(&pp).Error
	if err != nil {
		return nil, err
	}
	return &pp, nil
}

// Listar joins producto so the default ordering (by product clave) works
// without a second round-trip per row.
func (r *productoProveedorRepo) Listar(ctx context.Context, filter dto.ProductoProveedorFilter) ([]model.ProductoProveedor, error) {
	var vinculos []model.ProductoProveedor

	q := r.db.WithContext(ctx).Model(&model.ProductoProveedor{}).
		Joins("JOIN producto ON producto.id = producto_proveedor.producto_id").
		Preload("Proveedor")

	if filter.Producto != "" {
		q = q.Where("producto_proveedor.producto_id = ?", filter.Producto)
	}
	if filter.Proveedor != "" {
		q = q.Where("producto_proveedor.proveedor_id = ?", filter.Proveedor)
	}

	err := q.Order(BuildOrder(filter.Ordering, productoProveedorOrdering, "producto.clave ASC")).Find(&vinculos).Error
	return vinculos, err
}

func (r *productoProveedorRepo) ListarPorProducto(ctx context.Context, productoID uuid.UUID, soloActivos bool) ([]model.ProductoProveedor, error) {
	var vinculos []model.ProductoProveedor
	q := r.db.WithContext(ctx).Preload("Proveedor").Where("producto_id = ?", productoID)
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Find(&vinculos).Error
	return vinculos, err
}

func (r *productoProveedorRepo) Actualizar(ctx context.Context, pp *model.ProductoProveedor) error {
	return r.db.WithContext(ctx).Save(pp).Error
}

func (r *productoProveedorRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductoProveedor{}, "id = ?", id).Error
}

func (r *productoProveedorRepo) EliminarPorProductoTx(tx *gorm.DB, productoID uuid.UUID) error {
	return tx.Delete(&model.ProductoProveedor{}, "producto_id = ?", productoID).Error
}
