package service

import (
	"context"
	"errors"

	"distribuidora/internal/apierror"
	"distribuidora/internal/dto"
	"distribuidora/internal/model"
	"distribuidora/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoService implements the composite product write path: a product and
// its proveedor links are created or replaced inside one transaction, so a
// rejected link never leaves a half-written product behind.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoDetailResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoDetailResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoListItem, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoDetailResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo     repository.ProductoRepository
	tipoRepo repository.TipoProductoRepository
	provRepo repository.ProveedorRepository
	ppRepo   repository.ProductoProveedorRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	tipoRepo repository.TipoProductoRepository,
	provRepo repository.ProveedorRepository,
	ppRepo repository.ProductoProveedorRepository,
) ProductoService {
	return &productoService{repo: repo, tipoRepo: tipoRepo, provRepo: provRepo, ppRepo: ppRepo}
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func mapVinculo(pp model.ProductoProveedor) dto.ProductoProveedorResponse {
	resp := dto.ProductoProveedorResponse{
		ID:             pp.ID,
		Proveedor:      pp.ProveedorID,
		ClaveProveedor: pp.ClaveProveedor,
		Costo:          pp.Costo,
		Activo:         pp.Activo,
	}
	if pp.Proveedor != nil {
		resp.ProveedorNombre = pp.Proveedor.Nombre
	}
	return resp
}

func mapProductoDetail(p model.Producto) dto.ProductoDetailResponse {
	resp := dto.ProductoDetailResponse{
		ID:                 p.ID,
		Clave:              p.Clave,
		Nombre:             p.Nombre,
		TipoProducto:       p.TipoProductoID,
		ProveedoresDetalle: make([]dto.ProductoProveedorResponse, 0, len(p.ProductoProveedores)),
		Activo:             p.Activo,
		FechaCreacion:      p.FechaCreacion,
		FechaModificacion:  p.FechaModificacion,
	}
	if p.TipoProducto != nil {
		resp.TipoProductoNombre = p.TipoProducto.Nombre
	}
	for _, pp := range p.ProductoProveedores {
		resp.ProveedoresDetalle = append(resp.ProveedoresDetalle, mapVinculo(pp))
	}
	return resp
}

// mapProductoListItem derives the simplified projection: the count of active
// links and the minimum cost among them, computed over the preloaded rows.
func mapProductoListItem(p model.Producto) dto.ProductoListItem {
	item := dto.ProductoListItem{
		ID:           p.ID,
		Clave:        p.Clave,
		Nombre:       p.Nombre,
		TipoProducto: p.TipoProductoID,
		Activo:       p.Activo,
	}
	if p.TipoProducto != nil {
		item.TipoProductoNombre = p.TipoProducto.Nombre
	}
	var min *decimal.Decimal
	for _, pp := range p.ProductoProveedores {
		if !pp.Activo {
			continue
		}
		item.CantidadProveedores++
		if min == nil || pp.Costo.LessThan(*min) {
			costo := pp.Costo
			min = &costo
		}
	}
	item.CostoMinimo = min
	return item
}

// ─── Validation ──────────────────────────────────────────────────────────────

// validarVinculos resolves and validates the "proveedores" array of a
// composite write: every proveedor must exist, appear at most once, and carry
// a positive 2-decimal cost.
func (s *productoService) validarVinculos(ctx context.Context, productoID uuid.UUID, entradas []dto.ProveedorProductoInput) ([]model.ProductoProveedor, error) {
	vinculos := make([]model.ProductoProveedor, 0, len(entradas))
	vistos := make(map[uuid.UUID]bool, len(entradas))

	for _, in := range entradas {
		proveedorID, err := uuid.Parse(in.Proveedor)
		if err != nil {
			return nil, apierror.Validation("El campo 'proveedor' debe ser un id válido")
		}
		if vistos[proveedorID] {
			return nil, apierror.Validation("El proveedor aparece más de una vez en la lista")
		}
		vistos[proveedorID] = true

		if _, err := s.provRepo.ObtenerPorID(ctx, proveedorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Validation("Proveedor " + in.Proveedor + " no encontrado")
			}
			return nil, err
		}

		costo, err := validarCosto(in.Costo)
		if err != nil {
			return nil, err
		}

		activo := true
		if in.Activo != nil {
			activo = *in.Activo
		}
		vinculos = append(vinculos, model.ProductoProveedor{
			ProductoID:     productoID,
			ProveedorID:    proveedorID,
			ClaveProveedor: in.ClaveProveedor,
			Costo:          costo,
			Activo:         activo,
		})
	}
	return vinculos, nil
}

// ─── Operations ──────────────────────────────────────────────────────────────

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoDetailResponse, error) {
	existing, err := s.repo.ObtenerPorClave(ctx, req.Clave)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ProductoDetailResponse{}, err
	}
	if existing != nil {
		return dto.ProductoDetailResponse{}, apierror.Uniqueness("Ya existe un producto con esta clave")
	}

	tipoID, err := uuid.Parse(req.TipoProducto)
	if err != nil {
		return dto.ProductoDetailResponse{}, apierror.Validation("El campo 'tipo_producto' debe ser un id válido")
	}
	if _, err := s.tipoRepo.ObtenerPorID(ctx, tipoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoDetailResponse{}, apierror.Validation("Tipo de producto no encontrado")
		}
		return dto.ProductoDetailResponse{}, err
	}

	p := &model.Producto{
		ID:             uuid.New(),
		Clave:          req.Clave,
		Nombre:         req.Nombre,
		TipoProductoID: tipoID,
		Activo:         true,
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	vinculos, err := s.validarVinculos(ctx, p.ID, req.Proveedores)
	if err != nil {
		return dto.ProductoDetailResponse{}, err
	}

	// Product row plus every link row commit together or not at all.
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearTx(tx, p); err != nil {
			return traducirDuplicado(err, "Ya existe un producto con esta clave")
		}
		for i := range vinculos {
			if err := s.ppRepo.CrearTx(tx, &vinculos[i]); err != nil {
				return traducirDuplicado(err, "Este proveedor ya está asociado al producto")
			}
		}
		return nil
	})
	if err != nil {
		return dto.ProductoDetailResponse{}, err
	}

	return s.ObtenerPorID(ctx, p.ID)
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoDetailResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoDetailResponse{}, apierror.NotFound("Producto no encontrado")
		}
		return dto.ProductoDetailResponse{}, err
	}
	return mapProductoDetail(*p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoListItem, error) {
	productos, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoListItem, 0, len(productos))
	for _, p := range productos {
		items = append(items, mapProductoListItem(p))
	}
	return items, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoDetailResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoDetailResponse{}, apierror.NotFound("Producto no encontrado")
		}
		return dto.ProductoDetailResponse{}, err
	}

	if req.Clave != nil && *req.Clave != p.Clave {
		existing, err := s.repo.ObtenerPorClave(ctx, *req.Clave)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoDetailResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.ProductoDetailResponse{}, apierror.Uniqueness("Ya existe un producto con esta clave")
		}
		p.Clave = *req.Clave
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.TipoProducto != nil {
		tipoID, err := uuid.Parse(*req.TipoProducto)
		if err != nil {
			return dto.ProductoDetailResponse{}, apierror.Validation("El campo 'tipo_producto' debe ser un id válido")
		}
		if _, err := s.tipoRepo.ObtenerPorID(ctx, tipoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ProductoDetailResponse{}, apierror.Validation("Tipo de producto no encontrado")
			}
			return dto.ProductoDetailResponse{}, err
		}
		p.TipoProductoID = tipoID
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	// A supplied proveedores array — even an empty one — fully replaces the
	// link set. A nil array leaves current links untouched.
	var vinculos []model.ProductoProveedor
	if req.Proveedores != nil {
		vinculos, err = s.validarVinculos(ctx, p.ID, *req.Proveedores)
		if err != nil {
			return dto.ProductoDetailResponse{}, err
		}
	}

	// Association rows are preloaded on p; Save would try to upsert them
	// alongside the product, so strip them before persisting.
	p.ProductoProveedores = nil
	p.TipoProducto = nil

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ActualizarTx(tx, p); err != nil {
			return traducirDuplicado(err, "Ya existe un producto con esta clave")
		}
		if req.Proveedores == nil {
			return nil
		}
		if err := s.ppRepo.EliminarPorProductoTx(tx, p.ID); err != nil {
			return err
		}
		for i := range vinculos {
			if err := s.ppRepo.CrearTx(tx, &vinculos[i]); err != nil {
				return traducirDuplicado(err, "Este proveedor ya está asociado al producto")
			}
		}
		return nil
	})
	if err != nil {
		return dto.ProductoDetailResponse{}, err
	}

	return s.ObtenerPorID(ctx, id)
}

// Eliminar removes the product and every link it owns in one transaction.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Producto no encontrado")
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.ppRepo.EliminarPorProductoTx(tx, id); err != nil {
			return err
		}
		return s.repo.EliminarTx(tx, id)
	})
}
