package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/hugohenrick/central-brain/internal/config"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var databaseURL string

	root := &cobra.Command{
		Use:           "migration",
		Short:         "Gerencia o schema dos backends SQL do chat",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Carregar variáveis de ambiente
			_ = config.LoadDotEnv()
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("DATABASE_URL não informado")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "URI do armazenamento (padrão: $DATABASE_URL)")

	log := logger.NewLogger(logger.Options{Level: "info", Output: os.Stderr})

	root.AddCommand(
		newUpCmd(&databaseURL, log),
		newDownCmd(&databaseURL, log),
		newVersionCmd(&databaseURL),
	)
	return root
}

func newUpCmd(databaseURL *string, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(cmd.Context(), *databaseURL, log)
		},
	}
}

func newDownCmd(databaseURL *string, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "down [passos]",
		Short: "Reverte migrações; sem argumento reverte uma",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("número de passos inválido: %q", args[0])
				}
				steps = n
			}

			m, err := database.NewMigrator(*databaseURL)
			if err != nil {
				return err
			}
			defer m.Close()

			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("erro ao reverter migrações: %w", err)
			}
			log.Info("Migrações revertidas", "uri", database.RedactURI(*databaseURL), "steps", steps)
			return nil
		},
	}
}

func newVersionCmd(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual do schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := database.NewMigrator(*databaseURL)
			if err != nil {
				return err
			}
			defer m.Close()

			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				cmd.Println("nenhuma migração aplicada")
				return nil
			}
			if err != nil {
				return fmt.Errorf("erro ao ler versão do schema: %w", err)
			}
			cmd.Printf("versão %d (dirty=%t)\n", version, dirty)
			return nil
		},
	}
}
