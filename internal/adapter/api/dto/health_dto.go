package dto

// HealthServices descreve o estado de cada dependência
type HealthServices struct {
	Server   string `json:"server"`
	Database string `json:"database"`
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string         `json:"status"`
	Services  HealthServices `json:"services"`
	Host      string         `json:"host,omitempty"`
	Timestamp string         `json:"timestamp"`
	Env       string         `json:"env"`
}

// RootResponse representa a resposta da rota raiz
type RootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
