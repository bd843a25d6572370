package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/central-brain/internal/adapter/api/controller"
	"github.com/hugohenrick/central-brain/internal/adapter/api/route"
	"github.com/hugohenrick/central-brain/internal/adapter/repository"
	"github.com/hugohenrick/central-brain/internal/config"
	"github.com/hugohenrick/central-brain/internal/domain/chat"
	"github.com/hugohenrick/central-brain/internal/infrastructure/database"
	"github.com/hugohenrick/central-brain/pkg/logger"
	"github.com/hugohenrick/central-brain/pkg/responder"
)

// store é a conexão com o armazenamento vista pela aplicação
type store interface {
	database.Monitor
	Start(ctx context.Context)
	Close(ctx context.Context) error
}

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	store  store
	router *gin.Engine
	server *http.Server
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	conn, repo, err := openStore(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	service := chat.NewService(repo, responder.New())

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := route.NewRouter(route.RouterConfig{
		ChatController:   controller.NewChatController(service, log),
		HealthController: controller.NewHealthController(conn, cfg.Environment),
		Logger:           log,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		ExposeErrors:     cfg.IsDevelopment(),
	})

	return &App{
		config: cfg,
		logger: log,
		store:  conn,
		router: router,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// openStore escolhe o backend pelo esquema da URI e monta conexão e repositório
func openStore(uri string, log logger.Logger) (store, chat.Repository, error) {
	backend, err := database.BackendFor(uri)
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case database.BackendMongo:
		conn := database.NewConnector(uri, database.DialMongo, log)
		conn.OnConnect(func(ctx context.Context, client *database.MongoClient) error {
			return repository.EnsureMongoIndexes(ctx, client)
		})
		return conn, repository.NewMongoChatRepository(conn, log), nil

	case database.BackendPostgres:
		conn := database.NewConnector(uri, database.DialPostgres, log)
		conn.OnConnect(func(ctx context.Context, client *database.PostgresClient) error {
			return database.RunMigrations(ctx, client.URI(), log)
		})
		return conn, repository.NewPostgresChatRepository(conn), nil

	case database.BackendSQLite:
		conn := database.NewConnector(uri, database.DialSQLite, log)
		conn.OnConnect(func(ctx context.Context, client *database.SQLiteClient) error {
			return database.RunMigrations(ctx, client.URI(), log)
		})
		return conn, repository.NewSQLiteChatRepository(conn), nil
	}

	return nil, nil, fmt.Errorf("%w: %s", database.ErrUnsupportedScheme, backend)
}

// Run inicia a conexão com o armazenamento e serve HTTP até ctx ser cancelado
func (a *App) Run(ctx context.Context) error {
	// o servidor sobe mesmo sem armazenamento disponível
	a.store.Start(context.WithoutCancel(ctx))

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado",
			"addr", a.server.Addr,
			"env", a.config.Environment,
			"database", database.RedactURI(a.config.DatabaseURL),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return nil
}

// Close libera os recursos da aplicação
func (a *App) Close(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	return a.store.Close(ctx)
}
