package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"distribuidora/internal/apierror"
	"distribuidora/internal/config"
	"distribuidora/internal/dto"
	"distribuidora/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.Migrate(db))

	return New(&config.Config{Env: "development"}, db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func crearTipoHTTP(t *testing.T, r *gin.Engine, nombre string) dto.TipoProductoResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/productos/api/tipos-producto/", gin.H{"nombre": nombre})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.TipoProductoResponse](t, w)
}

func crearProveedorHTTP(t *testing.T, r *gin.Engine, nombre string) dto.ProveedorResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/productos/api/proveedores/", gin.H{"nombre": nombre})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.ProveedorResponse](t, w)
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTiposProducto_CRUD(t *testing.T) {
	r := setupRouter(t)

	tipo := crearTipoHTTP(t, r, "Electrónica")
	assert.Equal(t, "Electrónica", tipo.Nombre)
	assert.True(t, tipo.Activo)

	// Duplicate name answers 400 with the canonical envelope
	w := doJSON(t, r, http.MethodPost, "/productos/api/tipos-producto/", gin.H{"nombre": "Electrónica"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode[apierror.Envelope](t, w)
	assert.NotEmpty(t, env.Error)

	w = doJSON(t, r, http.MethodGet, "/productos/api/tipos-producto/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lista := decode[[]dto.TipoProductoResponse](t, w)
	assert.Len(t, lista, 1)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/productos/api/tipos-producto/%s/", tipo.ID), gin.H{"descripcion": "Equipo de cómputo"})
	require.Equal(t, http.StatusOK, w.Code)
	actualizado := decode[dto.TipoProductoResponse](t, w)
	assert.Equal(t, "Electrónica", actualizado.Nombre)
	require.NotNil(t, actualizado.Descripcion)
	assert.Equal(t, "Equipo de cómputo", *actualizado.Descripcion)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/productos/api/tipos-producto/%s/", tipo.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/productos/api/tipos-producto/%s/", tipo.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAliasLegacy(t *testing.T) {
	r := setupRouter(t)

	// Created through the legacy mount, visible on the primary one
	w := doJSON(t, r, http.MethodPost, "/api/tipos-producto/", gin.H{"nombre": "Hogar"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tipo := decode[dto.TipoProductoResponse](t, w)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/productos/api/tipos-producto/%s/", tipo.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tipos-producto/%s/", tipo.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductos_FlujoComposite(t *testing.T) {
	r := setupRouter(t)
	tipo := crearTipoHTTP(t, r, "Electrónica")
	proveedor := crearProveedorHTTP(t, r, "Acme")

	w := doJSON(t, r, http.MethodPost, "/productos/api/productos/", gin.H{
		"clave":         "ELEC-001",
		"nombre":        "Laptop",
		"tipo_producto": tipo.ID.String(),
		"proveedores": []gin.H{
			{"proveedor": proveedor.ID.String(), "clave_proveedor": "A1", "costo": "10.00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	producto := decode[dto.ProductoDetailResponse](t, w)
	assert.Equal(t, "Electrónica", producto.TipoProductoNombre)
	require.Len(t, producto.ProveedoresDetalle, 1)
	assert.Equal(t, "Acme", producto.ProveedoresDetalle[0].ProveedorNombre)
	assert.True(t, producto.ProveedoresDetalle[0].Activo)

	// The list projection carries the derived fields
	w = doJSON(t, r, http.MethodGet, "/productos/api/productos/?activo=true&clave=elec", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lista := decode[[]dto.ProductoListItem](t, w)
	require.Len(t, lista, 1)
	assert.Equal(t, 1, lista[0].CantidadProveedores)
	require.NotNil(t, lista[0].CostoMinimo)
	assert.Equal(t, "10.00", lista[0].CostoMinimo.StringFixed(2))

	// An empty proveedores array clears every link
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/productos/api/productos/%s/", producto.ID), gin.H{
		"proveedores": []gin.H{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	actualizado := decode[dto.ProductoDetailResponse](t, w)
	assert.Empty(t, actualizado.ProveedoresDetalle)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/productos/api/productos/%s/", producto.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/productos/api/productos/%s/", producto.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductos_VinculoInvalidoNoPersiste(t *testing.T) {
	r := setupRouter(t)
	tipo := crearTipoHTTP(t, r, "Electrónica")
	proveedor := crearProveedorHTTP(t, r, "Acme")

	w := doJSON(t, r, http.MethodPost, "/productos/api/productos/", gin.H{
		"clave":         "ELEC-001",
		"nombre":        "Laptop",
		"tipo_producto": tipo.ID.String(),
		"proveedores": []gin.H{
			{"proveedor": proveedor.ID.String(), "clave_proveedor": "A1", "costo": "-5"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The whole composite write was rejected: no product row either
	w = doJSON(t, r, http.MethodGet, "/productos/api/productos/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lista := decode[[]dto.ProductoListItem](t, w)
	assert.Empty(t, lista)
}

func TestProductos_SubAPIProveedores(t *testing.T) {
	r := setupRouter(t)
	tipo := crearTipoHTTP(t, r, "Electrónica")
	proveedor := crearProveedorHTTP(t, r, "Acme")

	w := doJSON(t, r, http.MethodPost, "/productos/api/productos/", gin.H{
		"clave":         "ELEC-001",
		"nombre":        "Laptop",
		"tipo_producto": tipo.ID.String(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	producto := decode[dto.ProductoDetailResponse](t, w)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/productos/api/productos/%s/agregar_proveedor/", producto.ID), gin.H{
		"proveedor":       proveedor.ID.String(),
		"clave_proveedor": "A1",
		"costo":           "15.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	vinculo := decode[dto.ProductoProveedorResponse](t, w)
	assert.Equal(t, "Acme", vinculo.ProveedorNombre)

	// Same pair again → 400
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/productos/api/productos/%s/agregar_proveedor/", producto.ID), gin.H{
		"proveedor":       proveedor.ID.String(),
		"clave_proveedor": "A2",
		"costo":           "12.00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/productos/api/productos/%s/proveedores/", producto.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	vinculos := decode[[]dto.ProductoProveedorResponse](t, w)
	require.Len(t, vinculos, 1)
	assert.Equal(t, "A1", vinculos[0].ClaveProveedor)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/productos/api/productos/%s/eliminar_proveedor/%s/", producto.ID, proveedor.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Already removed → 404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/productos/api/productos/%s/eliminar_proveedor/%s/", producto.ID, proveedor.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProveedores_EliminarConVinculos(t *testing.T) {
	r := setupRouter(t)
	tipo := crearTipoHTTP(t, r, "Electrónica")
	proveedor := crearProveedorHTTP(t, r, "Acme")

	w := doJSON(t, r, http.MethodPost, "/productos/api/productos/", gin.H{
		"clave":         "ELEC-001",
		"nombre":        "Laptop",
		"tipo_producto": tipo.ID.String(),
		"proveedores": []gin.H{
			{"proveedor": proveedor.ID.String(), "clave_proveedor": "A1", "costo": "10.00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/productos/api/proveedores/%s/", proveedor.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode[apierror.Envelope](t, w)
	assert.Contains(t, env.Error, "No se puede eliminar")
}

func TestErrores_Contrato(t *testing.T) {
	r := setupRouter(t)

	// Malformed path id
	w := doJSON(t, r, http.MethodGet, "/productos/api/productos/no-es-uuid/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode[apierror.Envelope](t, w)
	assert.Equal(t, "ID inválido", env.Error)

	// Unknown but well-formed id
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/productos/api/productos/%s/", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing required fields
	w = doJSON(t, r, http.MethodPost, "/productos/api/productos/", gin.H{"nombre": "Sin clave"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env = decode[apierror.Envelope](t, w)
	assert.NotEmpty(t, env.Error)

	// Unbindable query param
	w = doJSON(t, r, http.MethodGet, "/productos/api/productos/?activo=quizas", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env = decode[apierror.Envelope](t, w)
	assert.Equal(t, "Parámetros de consulta inválidos", env.Error)
}
