package chat

import (
	"context"
	"errors"
)

var (
	ErrStoreUnavailable = errors.New("armazenamento indisponível")
	ErrWriteFailure     = errors.New("falha ao gravar mensagem")
	ErrReadFailure      = errors.New("falha ao ler histórico")
)

// Repository define o log de mensagens: somente inserção e leitura ordenada
type Repository interface {
	// Append grava uma nova mensagem com timestamp atribuído no momento da escrita
	Append(ctx context.Context, text string, origin Origin) (*Entry, error)

	// ListAll retorna todo o histórico em ordem crescente de timestamp,
	// com empate resolvido pela ordem de inserção
	ListAll(ctx context.Context) ([]*Entry, error)
}
