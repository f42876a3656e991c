package service

import (
	"context"
	"errors"

	"distribuidora/internal/apierror"
	"distribuidora/internal/dto"
	"distribuidora/internal/model"
	"distribuidora/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TipoProductoService defines business operations for product categories.
type TipoProductoService interface {
	Crear(ctx context.Context, req dto.CrearTipoProductoRequest) (dto.TipoProductoResponse, error)
	Listar(ctx context.Context, filter dto.CatalogoFilter) ([]dto.TipoProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.TipoProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoProductoRequest) (dto.TipoProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type tipoProductoService struct {
	repo repository.TipoProductoRepository
}

func NewTipoProductoService(repo repository.TipoProductoRepository) TipoProductoService {
	return &tipoProductoService{repo: repo}
}

func mapTipoProducto(t model.TipoProducto) dto.TipoProductoResponse {
	return dto.TipoProductoResponse{
		ID:                t.ID,
		Nombre:            t.Nombre,
		Descripcion:       t.Descripcion,
		Activo:            t.Activo,
		FechaCreacion:     t.FechaCreacion,
		FechaModificacion: t.FechaModificacion,
	}
}

func (s *tipoProductoService) Crear(ctx context.Context, req dto.CrearTipoProductoRequest) (dto.TipoProductoResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TipoProductoResponse{}, err
	}
	if existing != nil {
		return dto.TipoProductoResponse{}, apierror.Uniqueness("Ya existe un tipo de producto con ese nombre")
	}

	t := &model.TipoProducto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if req.Activo != nil {
		t.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return dto.TipoProductoResponse{}, traducirDuplicado(err, "Ya existe un tipo de producto con ese nombre")
	}
	return mapTipoProducto(*t), nil
}

func (s *tipoProductoService) Listar(ctx context.Context, filter dto.CatalogoFilter) ([]dto.TipoProductoResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TipoProductoResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapTipoProducto(t))
	}
	return result, nil
}

func (s *tipoProductoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.TipoProductoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TipoProductoResponse{}, apierror.NotFound("Tipo de producto no encontrado")
		}
		return dto.TipoProductoResponse{}, err
	}
	return mapTipoProducto(*t), nil
}

func (s *tipoProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTipoProductoRequest) (dto.TipoProductoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TipoProductoResponse{}, apierror.NotFound("Tipo de producto no encontrado")
		}
		return dto.TipoProductoResponse{}, err
	}

	if req.Nombre != nil && *req.Nombre != t.Nombre {
		existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TipoProductoResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.TipoProductoResponse{}, apierror.Uniqueness("Ya existe un tipo de producto con ese nombre")
		}
		t.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		t.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, t); err != nil {
		return dto.TipoProductoResponse{}, traducirDuplicado(err, "Ya existe un tipo de producto con ese nombre")
	}
	return mapTipoProducto(*t), nil
}

// Eliminar refuses to delete a tipo while products reference it: the
// reference is protected, never cascaded.
func (s *tipoProductoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Tipo de producto no encontrado")
		}
		return err
	}
	count, err := s.repo.CountProductos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apierror.Referential("No se puede eliminar el tipo de producto porque tiene productos asociados")
	}
	return s.repo.Eliminar(ctx, id)
}
