package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUnsupportedScheme = errors.New("esquema de URI não suportado")

// Backend identifica o tipo de armazenamento configurado
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// BackendFor escolhe o armazenamento pelo esquema da URI
func BackendFor(uri string) (Backend, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, uri)
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "sqlite":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// RedactURI remove credenciais da URI para que possa ser registrada em log
func RedactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<uri inválida>"
	}
	if u.User != nil {
		u.User = url.User("***")
	}
	return u.String()
}
