package gormdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
)

// Open abre el pool según el driver configurado (postgres vía pgx, sqlite vía modernc).
func Open(cfg config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return openPostgres(cfg.DSN, log)
	case "sqlite":
		return OpenSQLite(cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(dsn string, log logger.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(sqlDB); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect with GORM: %w", err)
	}
	return db, nil
}

// OpenSQLite abre un archivo sqlite (o ":memory:"). Usa una sola conexión:
// sqlite serializa las escrituras y ":memory:" es por conexión.
func OpenSQLite(dsn string, log logger.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := ping(sqlDB); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: sqlDB}), gormConfig(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect with GORM: %w", err)
	}
	return db, nil
}

// Close cierra el pool subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifica la conexión (lo usa /health).
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func ping(sqlDB *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return err
	}
	return nil
}

func gormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: newGormLogger(log),
		// Sin FKs en la base: las reglas de unicidad y borrado viven en los repos.
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// AllModels devuelve los modelos para AutoMigrate.
func AllModels() []any {
	return []any{
		&catRecord{},
		&careRecord{},
		&temperamentRecord{},
		&sociabilityRecord{},
		&housingRecord{},
		&adoptionApplicationRecord{},
		&adoptedRecord{},
		&fosterApplicationRecord{},
		&placementRecord{},
		&historyRecord{},
		&adminRecord{},
		&sessionRecord{},
	}
}

// Migrate crea o actualiza el esquema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
