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

// ProductoProveedorService manages the association entity, both through the
// generic /productos-proveedores/ resource and the per-product sub-API
// (listar/agregar/eliminar proveedor).
type ProductoProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProductoProveedorRequest) (dto.ProductoProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoProveedorResponse, error)
	Listar(ctx context.Context, filter dto.ProductoProveedorFilter) ([]dto.ProductoProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoProveedorRequest) (dto.ProductoProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.ProductoProveedorResponse, error)
	AgregarProveedor(ctx context.Context, productoID uuid.UUID, req dto.AgregarProveedorRequest) (dto.ProductoProveedorResponse, error)
	EliminarProveedor(ctx context.Context, productoID, proveedorID uuid.UUID) error
}

type productoProveedorService struct {
	repo     repository.ProductoProveedorRepository
	prodRepo repository.ProductoRepository
	provRepo repository.ProveedorRepository
}

func NewProductoProveedorService(
	repo repository.ProductoProveedorRepository,
	prodRepo repository.ProductoRepository,
	provRepo repository.ProveedorRepository,
) ProductoProveedorService {
	return &productoProveedorService{repo: repo, prodRepo: prodRepo, provRepo: provRepo}
}

// checarPar rejects the write when a link for (producto, proveedor) already
// exists. The composite unique index backs this check under concurrency.
func (s *productoProveedorService) checarPar(ctx context.Context, productoID, proveedorID uuid.UUID) error {
	_, err := s.repo.ObtenerPorPar(ctx, productoID, proveedorID)
	if err == nil {
		return apierror.Uniqueness("Este proveedor ya está asociado al producto")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *productoProveedorService) resolverProveedor(ctx context.Context, raw string) (uuid.UUID, error) {
	proveedorID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.Validation("El campo 'proveedor' debe ser un id válido")
	}
	if _, err := s.provRepo.ObtenerPorID(ctx, proveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apierror.Validation("Proveedor no encontrado")
		}
		return uuid.Nil, err
	}
	return proveedorID, nil
}

// ─── Generic resource ────────────────────────────────────────────────────────

func (s *productoProveedorService) Crear(ctx context.Context, req dto.CrearProductoProveedorRequest) (dto.ProductoProveedorResponse, error) {
	productoID, err := uuid.Parse(req.Producto)
	if err != nil {
		return dto.ProductoProveedorResponse{}, apierror.Validation("El campo 'producto' debe ser un id válido")
	}
	if _, err := s.prodRepo.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoProveedorResponse{}, apierror.Validation("Producto no encontrado")
		}
		return dto.ProductoProveedorResponse{}, err
	}

	proveedorID, err := s.resolverProveedor(ctx, req.Proveedor)
	if err != nil {
		return dto.ProductoProveedorResponse{}, err
	}
	if err := s.checarPar(ctx, productoID, proveedorID); err != nil {
		return dto.ProductoProveedorResponse{}, err
	}
	costo, err := validarCosto(req.Costo)
	if err != nil {
		return dto.ProductoProveedorResponse{}, err
	}

	pp := &model.ProductoProveedor{
		ProductoID:     productoID,
		ProveedorID:    proveedorID,
		ClaveProveedor: req.ClaveProveedor,
		Costo:          costo,
		Activo:         true,
	}
	if req.Activo != nil {
		pp.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, pp); err != nil {
		return dto.ProductoProveedorResponse{}, traducirDuplicado(err, "Este proveedor ya está asociado al producto")
	}
	return s.ObtenerPorID(ctx, pp.ID)
}

func (s *productoProveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoProveedorResponse, error) {
	pp, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoProveedorResponse{}, apierror.NotFound("Relación producto-proveedor no encontrada")
		}
		return dto.ProductoProveedorResponse{}, err
	}
	return mapVinculo(*pp), nil
}

func (s *productoProveedorService) Listar(ctx context.Context, filter dto.ProductoProveedorFilter) ([]dto.ProductoProveedorResponse, error) {
	vinculos, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoProveedorResponse, 0, len(vinculos))
	for _, pp := range vinculos {
		result = append(result, mapVinculo(pp))
	}
	return result, nil
}

func (s *productoProveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoProveedorRequest) (dto.ProductoProveedorResponse, error) {
	pp, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoProveedorResponse{}, apierror.NotFound("Relación producto-proveedor no encontrada")
		}
		return dto.ProductoProveedorResponse{}, err
	}

	if req.Proveedor != nil {
		proveedorID, err := s.resolverProveedor(ctx, *req.Proveedor)
		if err != nil {
			return dto.ProductoProveedorResponse{}, err
		}
		if proveedorID != pp.ProveedorID {
			if err := s.checarPar(ctx, pp.ProductoID, proveedorID); err != nil {
				return dto.ProductoProveedorResponse{}, err
			}
			pp.ProveedorID = proveedorID
			pp.Proveedor = nil
		}
	}
	if req.ClaveProveedor != nil {
		pp.ClaveProveedor = *req.ClaveProveedor
	}
	if req.Costo != nil {
		costo, err := validarCosto(*req.Costo)
		if err != nil {
			return dto.ProductoProveedorResponse{}, err
		}
		pp.Costo = costo
	}
	if req.Activo != nil {
		pp.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, pp); err != nil {
		return dto.ProductoProveedorResponse{}, traducirDuplicado(err, "Este proveedor ya está asociado al producto")
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *productoProveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Relación producto-proveedor no encontrada")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}

// ─── Sub-API of a product ────────────────────────────────────────────────────

// ListarPorProducto returns only the active links of the product, each
// annotated with the proveedor's name.
func (s *productoProveedorService) ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.ProductoProveedorResponse, error) {
	if _, err := s.prodRepo.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, err
	}
	vinculos, err := s.repo.ListarPorProducto(ctx, productoID, true)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoProveedorResponse, 0, len(vinculos))
	for _, pp := range vinculos {
		result = append(result, mapVinculo(pp))
	}
	return result, nil
}

func (s *productoProveedorService) AgregarProveedor(ctx context.Context, productoID uuid.UUID, req dto.AgregarProveedorRequest) (dto.ProductoProveedorResponse, error) {
	if _, err := s.prodRepo.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoProveedorResponse{}, apierror.NotFound("Producto no encontrado")
		}
		return dto.ProductoProveedorResponse{}, err
	}
	proveedorID, err := s.resolverProveedor(ctx, req.Proveedor)
	if err != nil {
		return dto.ProductoProveedorResponse{}, err
	}
	if err := s.checarPar(ctx, productoID, proveedorID); err != nil {
		return dto.ProductoProveedorResponse{}, err
	}
	costo, err := validarCosto(req.Costo)
	if err != nil {
		return dto.ProductoProveedorResponse{}, err
	}

	pp := &model.ProductoProveedor{
		ProductoID:     productoID,
		ProveedorID:    proveedorID,
		ClaveProveedor: req.ClaveProveedor,
		Costo:          costo,
		Activo:         true,
	}
	if req.Activo != nil {
		pp.Activo = *req.Activo
	}
	if err := s.repo.Crear(ctx, pp); err != nil {
		return dto.ProductoProveedorResponse{}, traducirDuplicado(err, "Este proveedor ya está asociado al producto")
	}
	return s.ObtenerPorID(ctx, pp.ID)
}

func (s *productoProveedorService) EliminarProveedor(ctx context.Context, productoID, proveedorID uuid.UUID) error {
	if _, err := s.prodRepo.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Producto no encontrado")
		}
		return err
	}
	pp, err := s.repo.ObtenerPorPar(ctx, productoID, proveedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Relación producto-proveedor no encontrada")
		}
		return err
	}
	return s.repo.Eliminar(ctx, pp.ID)
}
