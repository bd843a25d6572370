package chat

import (
	"context"
	"fmt"
)

// Responder gera o texto de resposta para uma mensagem do usuário
type Responder interface {
	Respond(message string) string
}

// ResponderFunc adapta uma função comum para Responder
type ResponderFunc func(message string) string

// Respond implementa Responder
func (f ResponderFunc) Respond(message string) string {
	return f(message)
}

// Service coordena o fluxo de uma conversa sobre o log de mensagens
type Service struct {
	repo      Repository
	responder Responder
}

// NewService cria uma nova instância de Service
func NewService(repo Repository, responder Responder) *Service {
	return &Service{
		repo:      repo,
		responder: responder,
	}
}

// Converse grava a mensagem do usuário, gera a resposta e grava a resposta.
// As duas gravações são independentes: se a segunda falhar, a primeira permanece.
func (s *Service) Converse(ctx context.Context, message string) (string, error) {
	if _, err := s.repo.Append(ctx, message, OriginUser); err != nil {
		return "", fmt.Errorf("erro ao salvar mensagem do usuário: %w", err)
	}

	reply := s.responder.Respond(message)

	if _, err := s.repo.Append(ctx, reply, OriginResponder); err != nil {
		return "", fmt.Errorf("erro ao salvar resposta: %w", err)
	}

	return reply, nil
}

// History retorna o histórico completo em ordem cronológica
func (s *Service) History(ctx context.Context) ([]*Entry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	return entries, nil
}
