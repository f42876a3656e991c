package router

import (
	"time"

	"distribuidora/internal/config"
	"distribuidora/internal/handler"
	"distribuidora/internal/middleware"
	"distribuidora/internal/repository"
	"distribuidora/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	tipoRepo := repository.NewTipoProductoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	vinculoRepo := repository.NewProductoProveedorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tipoSvc := service.NewTipoProductoService(tipoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	vinculoSvc := service.NewProductoProveedorService(vinculoRepo, productoRepo, proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo, tipoRepo, proveedorRepo, vinculoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tiposH := handler.NewTiposProductoHandler(tipoSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	productosH := handler.NewProductosHandler(productoSvc, vinculoSvc)
	vinculosH := handler.NewProductosProveedoresHandler(vinculoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	// Primary mount plus the legacy alias kept for backward compatibility:
	// same handlers registered twice, one implementation.
	registrarAPI(r.Group("/productos/api"), tiposH, proveedoresH, productosH, vinculosH)
	registrarAPI(r.Group("/api"), tiposH, proveedoresH, productosH, vinculosH)

	return r
}

// registrarAPI lays out the resource routes the way the original API exposed
// them, trailing slashes included.
func registrarAPI(
	g *gin.RouterGroup,
	tiposH *handler.TiposProductoHandler,
	proveedoresH *handler.ProveedoresHandler,
	productosH *handler.ProductosHandler,
	vinculosH *handler.ProductosProveedoresHandler,
) {
	tipos := g.Group("/tipos-producto")
	{
		tipos.GET("/", tiposH.Listar)
		tipos.POST("/", tiposH.Crear)
		tipos.GET("/:id/", tiposH.Obtener)
		tipos.PUT("/:id/", tiposH.Actualizar)
		tipos.PATCH("/:id/", tiposH.Actualizar)
		tipos.DELETE("/:id/", tiposH.Eliminar)
	}

	proveedores := g.Group("/proveedores")
	{
		proveedores.GET("/", proveedoresH.Listar)
		proveedores.POST("/", proveedoresH.Crear)
		proveedores.GET("/:id/", proveedoresH.Obtener)
		proveedores.PUT("/:id/", proveedoresH.Actualizar)
		proveedores.PATCH("/:id/", proveedoresH.Actualizar)
		proveedores.DELETE("/:id/", proveedoresH.Eliminar)
	}

	productos := g.Group("/productos")
	{
		productos.GET("/", productosH.Listar)
		productos.POST("/", productosH.Crear)
		productos.GET("/:id/", productosH.Obtener)
		productos.PUT("/:id/", productosH.Actualizar)
		productos.PATCH("/:id/", productosH.Actualizar)
		productos.DELETE("/:id/", productosH.Eliminar)

		productos.GET("/:id/proveedores/", productosH.Proveedores)
		productos.POST("/:id/agregar_proveedor/", productosH.AgregarProveedor)
		productos.DELETE("/:id/eliminar_proveedor/:proveedor_id/", productosH.EliminarProveedor)
	}

	vinculos := g.Group("/productos-proveedores")
	{
		vinculos.GET("/", vinculosH.Listar)
		vinculos.POST("/", vinculosH.Crear)
		vinculos.GET("/:id/", vinculosH.Obtener)
		vinculos.PUT("/:id/", vinculosH.Actualizar)
		vinculos.PATCH("/:id/", vinculosH.Actualizar)
		vinculos.DELETE("/:id/", vinculosH.Eliminar)
	}
}
