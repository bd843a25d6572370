package dto

import (
	"fmt"
	"time"

	"github.com/hugohenrick/central-brain/internal/domain/chat"
)

// ISOTimestamp é o formato ISO-8601 com milissegundos usado no JSON
const ISOTimestamp = "2006-01-02T15:04:05.000Z07:00"

// ChatRequest representa uma mensagem enviada pelo usuário.
// O campo é obrigatório, mas uma string vazia é uma mensagem válida.
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}

// ChatResponse representa a resposta gerada para a mensagem
type ChatResponse struct {
	Message string `json:"message"`
}

// ChatEntryResponse é o formato externo de uma mensagem do histórico.
// A origem é codificada em dois campos booleanos por compatibilidade.
type ChatEntryResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsUser    bool   `json:"isUser"`
	IsAI      bool   `json:"isAI"`
	Timestamp string `json:"timestamp"`
}

// ToChatEntryResponse converte uma mensagem do domínio para o formato externo
func ToChatEntryResponse(e *chat.Entry) ChatEntryResponse {
	isUser, isAI := e.Origin.Flags()
	return ChatEntryResponse{
		ID:        e.ID,
		Text:      e.Text,
		IsUser:    isUser,
		IsAI:      isAI,
		Timestamp: e.Timestamp.UTC().Format(ISOTimestamp),
	}
}

// ToChatHistoryResponse converte o histórico; nunca retorna nil
func ToChatHistoryResponse(entries []*chat.Entry) []ChatEntryResponse {
	response := make([]ChatEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, ToChatEntryResponse(e))
	}
	return response
}

// ToEntry converte o formato externo de volta para o domínio.
// Flags ambíguas (ambas ou nenhuma) são rejeitadas.
func (r ChatEntryResponse) ToEntry() (*chat.Entry, error) {
	origin, err := chat.OriginFromFlags(r.IsUser, r.IsAI)
	if err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("timestamp inválido: %w", err)
	}

	return &chat.Entry{
		ID:        r.ID,
		Text:      r.Text,
		Origin:    origin,
		Timestamp: ts.UTC(),
	}, nil
}
