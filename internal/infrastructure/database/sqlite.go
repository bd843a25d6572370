package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

var ErrSQLiteMemory = errors.New("sqlite em memória não é suportado; informe um arquivo")

// SQLiteClient é o handle de um banco SQLite local
type SQLiteClient struct {
	db   *sql.DB
	uri  string
	path string
}

// SQLitePath extrai o caminho do arquivo de uma URI sqlite://
func SQLitePath(uri string) string {
	path := strings.TrimPrefix(uri, "sqlite://")
	if before, _, ok := strings.Cut(path, "?"); ok {
		path = before
	}
	return path
}

// DialSQLite abre o arquivo SQLite, criando o diretório pai se preciso
func DialSQLite(ctx context.Context, uri string) (*SQLiteClient, error) {
	path := SQLitePath(uri)
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file::memory") {
		return nil, ErrSQLiteMemory
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do sqlite: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir sqlite: %w", err)
	}

	// SQLite serializa escritas; uma única conexão evita SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o sqlite: %w", err)
	}

	return &SQLiteClient{db: db, uri: uri, path: path}, nil
}

// DB retorna o banco
func (c *SQLiteClient) DB() *sql.DB {
	return c.db
}

// URI retorna a URI usada na conexão
func (c *SQLiteClient) URI() string {
	return c.uri
}

// Host implementa Client
func (c *SQLiteClient) Host() string {
	return c.path
}

// Close implementa Client
func (c *SQLiteClient) Close(ctx context.Context) error {
	return c.db.Close()
}
