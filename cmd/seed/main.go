// cmd/seed/main.go — Pobla la base de datos con datos de prueba.
// Uso: go run ./cmd/seed [--limpiar]
//
// Sin --limpiar los datos se crean o actualizan sin tocar lo existente
// (clave de upsert: nombre, clave o el par producto-proveedor);
// con --limpiar se borra todo el catálogo antes de sembrar.
package main

import (
	"flag"
	"fmt"
	"log"

	"distribuidora/internal/config"
	"distribuidora/internal/infra"
	"distribuidora/internal/model"

	"github.com/shopspring/decimal"
)

type vinculoSeed struct {
	proveedor string
	clave     string
	costo     string
}

type productoSeed struct {
	clave       string
	nombre      string
	tipo        string
	proveedores []vinculoSeed
}

var tiposSeed = []struct{ nombre, descripcion string }{
	{"Electrónica", "Productos electrónicos y dispositivos"},
	{"Alimentos", "Productos alimenticios y bebidas"},
	{"Ropa", "Prendas de vestir y accesorios"},
	{"Hogar", "Artículos para el hogar"},
}

var proveedoresSeed = []struct{ nombre, descripcion string }{
	{"TechSupply SA", "Proveedor de productos tecnológicos"},
	{"ElectroMundo", "Distribuidor de electrónica"},
	{"AlimentiCorp", "Mayorista de alimentos"},
	{"FoodDistributors", "Distribución de productos alimenticios"},
	{"ModaTotal", "Proveedor de ropa y accesorios"},
}

var productosSeed = []productoSeed{
	{"ELEC-001", "Laptop HP 15\"", "Electrónica", []vinculoSeed{
		{"TechSupply SA", "HP-LAP-001", "8500.00"},
		{"ElectroMundo", "ELEC-HP-15", "8200.00"},
	}},
	{"ELEC-002", "Mouse Inalámbrico Logitech", "Electrónica", []vinculoSeed{
		{"TechSupply SA", "LOG-M170", "250.00"},
	}},
	{"ELEC-003", "Teclado Mecánico RGB", "Electrónica", []vinculoSeed{
		{"ElectroMundo", "KB-RGB-001", "1200.00"},
	}},
	{"ALI-001", "Arroz Premium 1kg", "Alimentos", []vinculoSeed{
		{"AlimentiCorp", "ARR-PREM-1K", "45.00"},
		{"FoodDistributors", "FOOD-ARR-001", "42.00"},
	}},
	{"ALI-002", "Aceite de Oliva 500ml", "Alimentos", []vinculoSeed{
		{"AlimentiCorp", "ACE-OLI-500", "85.00"},
	}},
	{"ALI-003", "Pasta Italiana 500g", "Alimentos", []vinculoSeed{
		{"FoodDistributors", "PAST-IT-500", "32.00"},
	}},
	{"ROP-001", "Playera Algodón Unisex", "Ropa", []vinculoSeed{
		{"ModaTotal", "PLY-ALG-UNI", "120.00"},
	}},
	{"ROP-002", "Jeans Mezclilla", "Ropa", []vinculoSeed{
		{"ModaTotal", "JNS-MZC-001", "450.00"},
	}},
	{"HOG-001", "Juego de Sábanas King Size", "Hogar", []vinculoSeed{
		{"ModaTotal", "SAB-KNG-001", "650.00"},
	}},
	{"HOG-002", "Toallas de Baño Set 3pz", "Hogar", []vinculoSeed{
		{"ModaTotal", "TOA-SET-3", "280.00"},
	}},
}

func main() {
	limpiar := flag.Bool("limpiar", false, "Elimina todos los datos antes de crear nuevos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if *limpiar {
		fmt.Println("Limpiando datos existentes...")
		// FK order: links first, then products, then the referenced catalogs.
		for _, m := range []interface{}{
			&model.ProductoProveedor{}, &model.Producto{}, &model.TipoProducto{}, &model.Proveedor{},
		} {
			if err := db.Where("1 = 1").Delete(m).Error; err != nil {
				log.Fatalf("delete error: %v", err)
			}
		}
	}

	tipos := make(map[string]model.TipoProducto, len(tiposSeed))
	for _, ts := range tiposSeed {
		descripcion := ts.descripcion
		var tipo model.TipoProducto
		err := db.Where(model.TipoProducto{Nombre: ts.nombre}).
			Assign(model.TipoProducto{Descripcion: &descripcion}).
			FirstOrCreate(&tipo).Error
		if err != nil {
			log.Fatalf("seed tipo %q: %v", ts.nombre, err)
		}
		tipos[ts.nombre] = tipo
	}
	fmt.Printf("✅ %d tipos de producto procesados\n", len(tipos))

	proveedores := make(map[string]model.Proveedor, len(proveedoresSeed))
	for _, ps := range proveedoresSeed {
		descripcion := ps.descripcion
		var proveedor model.Proveedor
		err := db.Where(model.Proveedor{Nombre: ps.nombre}).
			Assign(model.Proveedor{Descripcion: &descripcion}).
			FirstOrCreate(&proveedor).Error
		if err != nil {
			log.Fatalf("seed proveedor %q: %v", ps.nombre, err)
		}
		proveedores[ps.nombre] = proveedor
	}
	fmt.Printf("✅ %d proveedores procesados\n", len(proveedores))

	var vinculos int
	for _, ps := range productosSeed {
		var producto model.Producto
		err := db.Where(model.Producto{Clave: ps.clave}).
			Assign(model.Producto{Nombre: ps.nombre, TipoProductoID: tipos[ps.tipo].ID}).
			FirstOrCreate(&producto).Error
		if err != nil {
			log.Fatalf("seed producto %q: %v", ps.clave, err)
		}

		for _, vs := range ps.proveedores {
			costo, err := decimal.NewFromString(vs.costo)
			if err != nil {
				log.Fatalf("seed costo %q: %v", vs.costo, err)
			}
			err = db.Where(model.ProductoProveedor{
				ProductoID:  producto.ID,
				ProveedorID: proveedores[vs.proveedor].ID,
			}).Assign(map[string]interface{}{
				"clave_proveedor": vs.clave,
				"costo":           costo,
			}).FirstOrCreate(&model.ProductoProveedor{}).Error
			if err != nil {
				log.Fatalf("seed vinculo %s-%s: %v", ps.clave, vs.proveedor, err)
			}
			vinculos++
		}
	}
	fmt.Printf("✅ %d productos y %d relaciones procesados\n", len(productosSeed), vinculos)
}
