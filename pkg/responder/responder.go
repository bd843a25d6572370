package responder

// Placeholder gera uma resposta fixa a partir do texto recebido.
// Não há integração com modelo de linguagem.
type Placeholder struct{}

// New cria uma nova instância de Placeholder
func New() Placeholder {
	return Placeholder{}
}

// Respond implementa chat.Responder
func (Placeholder) Respond(message string) string {
	return "I understand your message: " + message + ". How can I help you further?"
}
