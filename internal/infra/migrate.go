package infra

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// RunMigrations applies the embedded schema and procedure migrations.
// command is one of up, down, status.
func RunMigrations(dsn, command string, log *zap.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	return MigrateDB(sqlDB, command, log)
}

func MigrateDB(sqlDB *sql.DB, command string, log *zap.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(zap.NewStdLog(log))
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(sqlDB, migrationsDir)
	case "down":
		return goose.Down(sqlDB, migrationsDir)
	case "status":
		return goose.Status(sqlDB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
