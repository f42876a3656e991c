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

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error)
	Listar(ctx context.Context, filter dto.CatalogoFilter) ([]dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func mapProveedor(p model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Activo:            p.Activo,
		FechaCreacion:     p.FechaCreacion,
		FechaModificacion: p.FechaModificacion,
	}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ProveedorResponse{}, err
	}
	if existing != nil {
		return dto.ProveedorResponse{}, apierror.Uniqueness("Ya existe un proveedor con ese nombre")
	}

	p := &model.Proveedor{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.ProveedorResponse{}, traducirDuplicado(err, "Ya existe un proveedor con ese nombre")
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Listar(ctx context.Context, filter dto.CatalogoFilter) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProveedor(p))
	}
	return result, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProveedorResponse{}, apierror.NotFound("Proveedor no encontrado")
		}
		return dto.ProveedorResponse{}, err
	}
	return mapProveedor(*p), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProveedorResponse{}, apierror.NotFound("Proveedor no encontrado")
		}
		return dto.ProveedorResponse{}, err
	}

	if req.Nombre != nil && *req.Nombre != p.Nombre {
		existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProveedorResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.ProveedorResponse{}, apierror.Uniqueness("Ya existe un proveedor con ese nombre")
		}
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProveedorResponse{}, traducirDuplicado(err, "Ya existe un proveedor con ese nombre")
	}
	return mapProveedor(*p), nil
}

// Eliminar refuses to delete a proveedor while producto_proveedor rows
// reference it.
func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Proveedor no encontrado")
		}
		return err
	}
	count, err := s.repo.CountVinculos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apierror.Referential("No se puede eliminar el proveedor porque tiene productos asociados")
	}
	return s.repo.Eliminar(ctx, id)
}
