package chat

import (
	"errors"
	"time"
)

var (
	ErrInvalidOrigin   = errors.New("origem da mensagem inválida")
	ErrAmbiguousOrigin = errors.New("origem ambígua: exatamente um entre isUser e isAI deve ser verdadeiro")
)

// Origin identifica quem produziu a mensagem
type Origin string

const (
	OriginUser      Origin = "user"
	OriginResponder Origin = "responder"
)

// Valid verifica se a origem pertence ao conjunto fechado suportado
func (o Origin) Valid() bool {
	return o == OriginUser || o == OriginResponder
}

// Flags converte a origem para o par (isUser, isAI) usado no formato externo
func (o Origin) Flags() (isUser, isAI bool) {
	switch o {
	case OriginUser:
		return true, false
	case OriginResponder:
		return false, true
	default:
		return false, false
	}
}

// OriginFromFlags converte o par (isUser, isAI) em uma origem.
// Ambos verdadeiros ou ambos falsos é rejeitado.
func OriginFromFlags(isUser, isAI bool) (Origin, error) {
	switch {
	case isUser && !isAI:
		return OriginUser, nil
	case isAI && !isUser:
		return OriginResponder, nil
	default:
		return "", ErrAmbiguousOrigin
	}
}

// Entry representa uma mensagem persistida no histórico do chat
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Origin    Origin    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry cria uma nova mensagem ainda sem identidade.
// O timestamp é normalizado para UTC com precisão de milissegundos.
func NewEntry(text string, origin Origin, now time.Time) (*Entry, error) {
	if !origin.Valid() {
		return nil, ErrInvalidOrigin
	}

	return &Entry{
		Text:      text,
		Origin:    origin,
		Timestamp: now.UTC().Truncate(time.Millisecond),
	}, nil
}
