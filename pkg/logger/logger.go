package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Options controla o formato e o nível do logger
type Options struct {
	Level  string // debug, info, warn, error
	JSON   bool
	Output io.Writer
}

// SlogLogger é uma implementação de Logger sobre log/slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// NewNopLogger descarta todas as mensagens. Útil em testes.
func NewNopLogger() Logger {
	return &SlogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With retorna um logger com os pares chave/valor anexados a todas as mensagens
func (l *SlogLogger) With(keysAndValues ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// With anexa os pares ao logger quando a implementação suporta; caso contrário devolve o próprio logger
func With(l Logger, keysAndValues ...interface{}) Logger {
	if w, ok := l.(interface {
		With(keysAndValues ...interface{}) Logger
	}); ok {
		return w.With(keysAndValues...)
	}
	return l
}

// Info registra uma mensagem de informação
func (l *SlogLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *SlogLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *SlogLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *SlogLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

// ParseLevel converte o nome do nível; valores desconhecidos viram info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
