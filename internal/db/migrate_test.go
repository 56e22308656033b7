package db

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/diewo77/go-taller/internal/models"
)

func TestMigrateAuto(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := Connect(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(conn, dsn, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// model writes and the raw SQL queries must agree on table names
	nota := models.Nota{Folio: 1, Fecha: models.Hoy(), ClienteClave: 1}
	if err := conn.Create(&nota).Error; err != nil {
		t.Fatalf("insert nota: %v", err)
	}
	var count int64
	if err := conn.Raw("SELECT COUNT(*) FROM notas").Scan(&count).Error; err != nil {
		t.Fatalf("count notas: %v", err)
	}
	if count != 1 {
		t.Fatalf("notas count = %d, want 1", count)
	}
}

func TestMigrateSQL(t *testing.T) {
	// the file:// migration source resolves relative to the module root
	t.Chdir("../..")
	dsn := filepath.Join(t.TempDir(), "taller.db")
	conn, err := Connect(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(conn, dsn, true); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// a second run is a no-op
	if err := Migrate(conn, dsn, true); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}

	// gorm writes land in the migrated tables
	cliente := models.Cliente{Apellidos: "Perez", Nombres: "Juan", Telefono: "5512345678"}
	if err := conn.Create(&cliente).Error; err != nil {
		t.Fatalf("insert cliente: %v", err)
	}
	nota := models.Nota{Folio: 1, Fecha: models.Hoy(), ClienteClave: cliente.Clave}
	if err := conn.Create(&nota).Error; err != nil {
		t.Fatalf("insert nota: %v", err)
	}
}
