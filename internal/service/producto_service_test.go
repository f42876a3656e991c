package service

import (
	"context"
	"testing"

	"distribuidora/internal/apierror"
	"distribuidora/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto_ConProveedores(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	proveedor := f.seedProveedor("Acme")

	resp, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Laptop",
		TipoProducto: tipo.ID.String(),
		Proveedores: []dto.ProveedorProductoInput{
			{Proveedor: proveedor.ID.String(), ClaveProveedor: "A1", Costo: mustDecimal("10.00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "P-1", resp.Clave)
	assert.Equal(t, "Electrónica", resp.TipoProductoNombre)
	require.Len(t, resp.ProveedoresDetalle, 1)
	assert.Equal(t, "Acme", resp.ProveedoresDetalle[0].ProveedorNombre)
	assert.True(t, resp.ProveedoresDetalle[0].Activo)

	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].CantidadProveedores)
	require.NotNil(t, items[0].CostoMinimo)
	assert.True(t, items[0].CostoMinimo.Equal(mustDecimal("10.00")))
}

func TestCrearProducto_ClaveDuplicada(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	f.seedProducto("P-1", "Laptop", tipo.ID, true)

	_, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Otro",
		TipoProducto: tipo.ID.String(),
	})

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindUniqueness, kind)
}

func TestCrearProducto_TipoInexistente(t *testing.T) {
	f := newFixtures()

	_, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Laptop",
		TipoProducto: uuid.NewString(),
	})

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindValidation, kind)
}

func TestCrearProducto_CostoInvalido_NadaPersiste(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	proveedor := f.seedProveedor("Acme")

	for _, costo := range []string{"0", "-5"} {
		_, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
			Clave:        "P-1",
			Nombre:       "Laptop",
			TipoProducto: tipo.ID.String(),
			Proveedores: []dto.ProveedorProductoInput{
				{Proveedor: proveedor.ID.String(), ClaveProveedor: "A1", Costo: mustDecimal(costo)},
			},
		})
		require.Error(t, err, "costo %s", costo)
		kind, _ := apierror.KindOf(err)
		assert.Equal(t, apierror.KindValidation, kind)
	}

	// A rejected link must leave neither product nor link rows behind
	assert.Empty(t, f.store.productos)
	assert.Empty(t, f.store.vinculos)
}

func TestCrearProducto_CostoMinimoAceptado(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	proveedor := f.seedProveedor("Acme")

	resp, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Laptop",
		TipoProducto: tipo.ID.String(),
		Proveedores: []dto.ProveedorProductoInput{
			{Proveedor: proveedor.ID.String(), ClaveProveedor: "A1", Costo: mustDecimal("0.01")},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.ProveedoresDetalle, 1)
	assert.True(t, resp.ProveedoresDetalle[0].Costo.Equal(mustDecimal("0.01")))
}

func TestCrearProducto_CostoRedondeadoADosDecimales(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	proveedor := f.seedProveedor("Acme")

	resp, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Laptop",
		TipoProducto: tipo.ID.String(),
		Proveedores: []dto.ProveedorProductoInput{
			{Proveedor: proveedor.ID.String(), ClaveProveedor: "A1", Costo: mustDecimal("100.005")},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.ProveedoresDetalle, 1)
	assert.True(t, resp.ProveedoresDetalle[0].Costo.Equal(mustDecimal("100.01")))
}

func TestCrearProducto_ProveedorRepetidoEnLista(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	proveedor := f.seedProveedor("Acme")

	_, err := f.productoSvc.Crear(context.Background(), dto.CrearProductoRequest{
		Clave:        "P-1",
		Nombre:       "Laptop",
		TipoProducto: tipo.ID.String(),
		Proveedores: []dto.ProveedorProductoInput{
			{Proveedor: proveedor.ID.String(), ClaveProveedor: "A1", Costo: mustDecimal("10.00")},
			{Proveedor: proveedor.ID.String(), ClaveProveedor: "A2", Costo: mustDecimal("12.00")},
		},
	})

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindValidation, kind)
	assert.Empty(t, f.store.productos)
}

func TestListarProductos_Filtros(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	otroTipo := f.seedTipo("Alimentos")
	f.seedProducto("ELEC-001", "Laptop", tipo.ID, true)
	f.seedProducto("ELEC-002", "Mouse", tipo.ID, false)
	f.seedProducto("ALI-001", "Arroz", otroTipo.ID, true)

	activo := true
	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{Activo: &activo})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Conjunctive with a case-insensitive clave match
	items, err = f.productoSvc.Listar(context.Background(), dto.ProductoFilter{Activo: &activo, Clave: "elec"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ELEC-001", items[0].Clave)

	items, err = f.productoSvc.Listar(context.Background(), dto.ProductoFilter{TipoProducto: otroTipo.ID.String()})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ALI-001", items[0].Clave)
}

func TestListarProductos_OrdenPorClave(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	f.seedProducto("B-2", "Beta", tipo.ID, true)
	f.seedProducto("A-1", "Alfa", tipo.ID, true)

	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A-1", items[0].Clave)
	assert.Equal(t, "B-2", items[1].Clave)
}

func TestListarProductos_CostoMinimoSoloActivos(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)
	acme := f.seedProveedor("Acme")
	barato := f.seedProveedor("Barato SA")
	f.seedVinculo(producto.ID, acme.ID, "A1", "10.00", true)
	// Cheaper but inactive: must not count nor win the minimum
	f.seedVinculo(producto.ID, barato.ID, "B1", "5.00", false)

	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].CantidadProveedores)
	require.NotNil(t, items[0].CostoMinimo)
	assert.True(t, items[0].CostoMinimo.Equal(mustDecimal("10.00")))
}

func TestListarProductos_SinVinculosCostoMinimoNulo(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	f.seedProducto("P-1", "Laptop", tipo.ID, true)

	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].CantidadProveedores)
	assert.Nil(t, items[0].CostoMinimo)
}

func TestActualizarProducto_Parcial(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)
	proveedor := f.seedProveedor("Acme")
	f.seedVinculo(producto.ID, proveedor.ID, "A1", "10.00", true)

	nombre := "Laptop HP"
	resp, err := f.productoSvc.Actualizar(context.Background(), producto.ID, dto.ActualizarProductoRequest{
		Nombre: &nombre,
	})

	require.NoError(t, err)
	assert.Equal(t, "P-1", resp.Clave)
	assert.Equal(t, "Laptop HP", resp.Nombre)
	// Omitted proveedores array leaves existing links untouched
	require.Len(t, resp.ProveedoresDetalle, 1)
}

func TestActualizarProducto_FalloDeVinculosNoAlteraNada(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)

	// Valid field change alongside an invalid link: the whole update fails
	// and the stored row keeps its previous values.
	nombre := "Laptop HP"
	_, err := f.productoSvc.Actualizar(context.Background(), producto.ID, dto.ActualizarProductoRequest{
		Nombre: &nombre,
		Proveedores: &[]dto.ProveedorProductoInput{
			{Proveedor: uuid.NewString(), ClaveProveedor: "X1", Costo: mustDecimal("10.00")},
		},
	})

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindValidation, kind)
	assert.Equal(t, "Laptop", f.store.productos[producto.ID].Nombre)
}

func TestActualizarProducto_ReemplazaVinculos(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)
	acme := f.seedProveedor("Acme")
	nuevo := f.seedProveedor("Nuevo SA")
	f.seedVinculo(producto.ID, acme.ID, "A1", "10.00", true)

	resp, err := f.productoSvc.Actualizar(context.Background(), producto.ID, dto.ActualizarProductoRequest{
		Proveedores: &[]dto.ProveedorProductoInput{
			{Proveedor: nuevo.ID.String(), ClaveProveedor: "N1", Costo: mustDecimal("8.00")},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.ProveedoresDetalle, 1)
	assert.Equal(t, nuevo.ID, resp.ProveedoresDetalle[0].Proveedor)
	assert.Len(t, f.store.vinculos, 1)
}

func TestActualizarProducto_ListaVaciaEliminaVinculos(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)
	proveedor := f.seedProveedor("Acme")
	f.seedVinculo(producto.ID, proveedor.ID, "A1", "10.00", true)

	vacio := []dto.ProveedorProductoInput{}
	resp, err := f.productoSvc.Actualizar(context.Background(), producto.ID, dto.ActualizarProductoRequest{
		Proveedores: &vacio,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.ProveedoresDetalle)
	assert.Empty(t, f.store.vinculos)

	items, err := f.productoSvc.Listar(context.Background(), dto.ProductoFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].CantidadProveedores)
	assert.Nil(t, items[0].CostoMinimo)
}

func TestEliminarProducto_CascadaVinculos(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("P-1", "Laptop", tipo.ID, true)
	proveedor := f.seedProveedor("Acme")
	f.seedVinculo(producto.ID, proveedor.ID, "A1", "10.00", true)

	err := f.productoSvc.Eliminar(context.Background(), producto.ID)

	require.NoError(t, err)
	assert.Empty(t, f.store.productos)
	assert.Empty(t, f.store.vinculos)
	// Referenced catalogs survive the cascade
	assert.Contains(t, f.store.proveedores, proveedor.ID)
	assert.Contains(t, f.store.tipos, tipo.ID)
}

func TestEliminarProducto_NoExiste(t *testing.T) {
	f := newFixtures()

	err := f.productoSvc.Eliminar(context.Background(), uuid.New())

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindNotFound, kind)
}
