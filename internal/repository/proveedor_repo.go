package repository

import (
	"context"

	"distribuidora/internal/dto"
	"distribuidora/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	Listar(ctx context.Context, filter dto.CatalogoFilter) ([]model.Proveedor, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Proveedor, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	CountVinculos(ctx context.Context, id uuid.UUID) (int64, error)
}

var proveedorOrdering = map[string]string{
	"nombre":         "nombre",
	"fecha_creacion": "fecha_creacion",
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepo{db: db}
}

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) Listar(ctx context.Context, filter dto.CatalogoFilter) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	q := r.db.WithContext(ctx).Model(&model.Proveedor{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(nombre) LIKE LOWER(?) OR LOWER(COALESCE(descripcion, '')) LIKE LOWER(?)", pattern, pattern)
	}
	err := q.Order(BuildOrder(filter.Ordering, proveedorOrdering, "nombre ASC")).Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Proveedor, error) {
	var p model.Proveedor
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Actualizar(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, "id = ?", id).Error
}

// CountVinculos reports how many producto_proveedor rows reference the
// proveedor — a non-zero count blocks deletion.
func (r *proveedorRepo) CountVinculos(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductoProveedor{}).Where("proveedor_id = ?", id).Count(&count).Error
	return count, err
}
