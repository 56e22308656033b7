package db

import (
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers and file source for
	// golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/diewo77/go-taller/internal/models"
)

// Migrate brings the schema up to date. With useSQL the versioned files in
// ./migrations run through golang-migrate; otherwise gorm AutoMigrate keeps
// dev setups moving.
func Migrate(conn *gorm.DB, dsn string, useSQL bool) error {
	if useSQL {
		if err := runSQLMigrations(dsn); err != nil {
			return fmt.Errorf("sql migrations: %w", err)
		}
	} else {
		for _, m := range []any{
			&models.Cliente{}, &models.Servicio{}, &models.Nota{}, &models.NotaDetalle{},
		} {
			if err := conn.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}

	for _, table := range []string{"clientes", "servicios", "notas", "detalles_nota"} {
		if !conn.Migrator().HasTable(table) {
			return fmt.Errorf("falta la tabla %s despues de migrar", table)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	url := NormalizeDSN(dsn)
	if !IsPostgresDSN(url) {
		url = "sqlite3://" + url
	}
	m, err := migrate.New("file://migrations", url)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
