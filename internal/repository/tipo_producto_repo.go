package repository

import (
	"context"

	"distribuidora/internal/dto"
	"distribuidora/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoProductoRepository defines data access for product categories.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type TipoProductoRepository interface {
	Crear(ctx context.Context, t *model.TipoProducto) error
	Listar(ctx context.Context, filter dto.CatalogoFilter) ([]model.TipoProducto, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.TipoProducto, error)
	Actualizar(ctx context.Context, t *model.TipoProducto) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	CountProductos(ctx context.Context, id uuid.UUID) (int64, error)
}

var tipoProductoOrdering = map[string]string{
	"nombre":         "nombre",
	"fecha_creacion": "fecha_creacion",
}

type tipoProductoRepo struct{ db *gorm.DB }

func NewTipoProductoRepository(db *gorm.DB) TipoProductoRepository {
	return &tipoProductoRepo{db: db}
}

func (r *tipoProductoRepo) Crear(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoProductoRepo) Listar(ctx context.Context, filter dto.CatalogoFilter) ([]model.TipoProducto, error) {
	var tipos []model.TipoProducto
	q := r.db.WithContext(ctx).Model(&model.TipoProducto{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(nombre) LIKE LOWER(?) OR LOWER(COALESCE(descripcion, '')) LIKE LOWER(?)", pattern, pattern)
	}
	err := q.Order(BuildOrder(filter.Ordering, tipoProductoOrdering, "nombre ASC")).Find(&tipos).Error
	return tipos, err
}

func (r *tipoProductoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error) {
	var t model.TipoProducto
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoProductoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.TipoProducto, error) {
	var t model.TipoProducto
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoProductoRepo) Actualizar(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoProductoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TipoProducto{}, "id = ?", id).Error
}

func (r *tipoProductoRepo) CountProductos(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("tipo_producto_id = ?", id).Count(&count).Error
	return count, err
}
