package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(err, message string) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Message: message,
	}
}
