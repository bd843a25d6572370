package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hugohenrick/central-brain/pkg/logger"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// NewMigrator cria uma instância do migrate com as migrações embutidas do backend
func NewMigrator(uri string) (*migrate.Migrate, error) {
	backend, err := BackendFor(uri)
	if err != nil {
		return nil, err
	}

	var (
		fsys embed.FS
		dir  string
	)
	switch backend {
	case BackendPostgres:
		fsys, dir = postgresMigrations, "migrations/postgres"
	case BackendSQLite:
		fsys, dir = sqliteMigrations, "migrations/sqlite"
	default:
		return nil, fmt.Errorf("%w: backend %s não usa migrações SQL", ErrUnsupportedScheme, backend)
	}

	source, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, uri)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	return m, nil
}

// RunMigrations aplica todas as migrações pendentes dentro do prazo de ctx.
// A espera pelo lock do schema é limitada ao tempo restante e o cancelamento
// interrompe a aplicação entre uma migração e outra.
func RunMigrations(ctx context.Context, uri string, log logger.Logger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	m, err := NewMigrator(uri)
	if err != nil {
		return err
	}
	defer m.Close()

	if timeout, ok := lockTimeout(ctx); ok {
		m.LockTimeout = timeout
	}

	stop := context.AfterFunc(ctx, func() {
		select {
		case m.GracefulStop <- true:
		default:
		}
	})
	defer stop()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("migrações interrompidas: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("erro ao ler versão do schema: %w", err)
	}

	log.Info("Migrações aplicadas", "uri", RedactURI(uri), "version", version, "dirty", dirty)
	return nil
}

// lockTimeout retorna o tempo restante até o prazo de ctx, se houver
func lockTimeout(ctx context.Context) (time.Duration, bool) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0, false
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return time.Millisecond, true
	}
	return remaining, true
}
