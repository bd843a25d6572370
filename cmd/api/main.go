package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/central-brain/internal/config"
	"github.com/hugohenrick/central-brain/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Carregar variáveis de ambiente
	dotEnvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger(logger.Options{JSON: true}).Error("Configuração inválida", "error", err)
		return 1
	}

	log := logger.NewLogger(logger.Options{
		Level: cfg.LogLevel,
		JSON:  !cfg.IsDevelopment(),
	})
	if dotEnvErr != nil {
		log.Warn("Arquivo .env não encontrado", "error", dotEnvErr)
	}

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("Erro ao criar aplicação", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	if err := app.Run(ctx); err != nil {
		log.Error("Erro no servidor", "error", err)
		exitCode = 1
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Close(closeCtx); err != nil {
		log.Error("Erro ao fechar conexão com o armazenamento", "error", err)
		exitCode = 1
	}

	log.Info("Servidor encerrado")
	return exitCode
}
