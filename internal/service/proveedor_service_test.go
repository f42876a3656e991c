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

func TestCrearProveedor(t *testing.T) {
	f := newFixtures()

	resp, err := f.proveedorSvc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "TechSupply SA"})

	require.NoError(t, err)
	assert.Equal(t, "TechSupply SA", resp.Nombre)
	assert.True(t, resp.Activo)
}

func TestCrearProveedor_NombreDuplicado(t *testing.T) {
	f := newFixtures()
	f.seedProveedor("Acme")

	_, err := f.proveedorSvc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Acme"})

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindUniqueness, kind)
}

func TestObtenerProveedor_NoExiste(t *testing.T) {
	f := newFixtures()

	_, err := f.proveedorSvc.ObtenerPorID(context.Background(), uuid.New())

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindNotFound, kind)
}

func TestEliminarProveedor_ConVinculos(t *testing.T) {
	f := newFixtures()
	tipo := f.seedTipo("Electrónica")
	producto := f.seedProducto("ELEC-001", "Laptop", tipo.ID, true)
	proveedor := f.seedProveedor("Acme")
	f.seedVinculo(producto.ID, proveedor.ID, "A1", "10.00", true)

	err := f.proveedorSvc.Eliminar(context.Background(), proveedor.ID)

	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindReferential, kind)
	assert.Contains(t, f.store.proveedores, proveedor.ID)
}

func TestEliminarProveedor_SinVinculos(t *testing.T) {
	f := newFixtures()
	proveedor := f.seedProveedor("Solitario")

	err := f.proveedorSvc.Eliminar(context.Background(), proveedor.ID)

	require.NoError(t, err)
	assert.NotContains(t, f.store.proveedores, proveedor.ID)
}

func TestActualizarProveedor_Parcial(t *testing.T) {
	f := newFixtures()
	proveedor := f.seedProveedor("Original")

	descripcion := "Mayorista de alimentos"
	resp, err := f.proveedorSvc.Actualizar(context.Background(), proveedor.ID, dto.ActualizarProveedorRequest{
		Descripcion: &descripcion,
	})

	require.NoError(t, err)
	// Absent fields retain their current value
	assert.Equal(t, "Original", resp.Nombre)
	require.NotNil(t, resp.Descripcion)
	assert.Equal(t, "Mayorista de alimentos", *resp.Descripcion)
}
