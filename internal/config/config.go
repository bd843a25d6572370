package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config contém as configurações da aplicação lidas do ambiente
type Config struct {
	// Armazenamento; o esquema da URI escolhe o backend
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Servidor HTTP
	Port               string        `env:"PORT" envDefault:"3000"`
	Environment        string        `env:"APP_ENV" envDefault:"development"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv carrega o arquivo .env, se existir
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load lê a configuração das variáveis de ambiente
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	return cfg, nil
}

// IsDevelopment indica se a aplicação roda em modo de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Addr retorna o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
