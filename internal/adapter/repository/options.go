package repository

import (
	"fmt"
	"time"

	"github.com/hugohenrick/central-brain/internal/domain/chat"
)

// ClientProvider fornece o handle do armazenamento enquanto houver conexão
type ClientProvider[C any] interface {
	Client() (C, error)
}

type repoOptions struct {
	now func() time.Time
}

// Option altera o comportamento dos repositórios
type Option func(*repoOptions)

// WithClock substitui o relógio usado para o timestamp das mensagens
func WithClock(now func() time.Time) Option {
	return func(o *repoOptions) { o.now = now }
}

func newOptions(opts []Option) repoOptions {
	o := repoOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", chat.ErrStoreUnavailable, err)
}

func writeFailure(err error) error {
	return fmt.Errorf("%w: %w", chat.ErrWriteFailure, err)
}

func readFailure(err error) error {
	return fmt.Errorf("%w: %w", chat.ErrReadFailure, err)
}
