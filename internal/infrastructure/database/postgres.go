package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresClient gerencia o pool de conexões com o PostgreSQL
type PostgresClient struct {
	pool *pgxpool.Pool
	uri  string
	host string
}

// DialPostgres cria o pool de conexões e testa a conexão
func DialPostgres(ctx context.Context, uri string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	// Ajustar configurações do pool
	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	return &PostgresClient{
		pool: pool,
		uri:  uri,
		host: fmt.Sprintf("%s:%d", config.ConnConfig.Host, config.ConnConfig.Port),
	}, nil
}

// Pool retorna o pool de conexões
func (c *PostgresClient) Pool() *pgxpool.Pool {
	return c.pool
}

// URI retorna a URI usada na conexão
func (c *PostgresClient) URI() string {
	return c.uri
}

// Host implementa Client
func (c *PostgresClient) Host() string {
	return c.host
}

// Close fecha o pool de conexões
func (c *PostgresClient) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}
