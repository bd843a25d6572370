package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hugohenrick/central-brain/pkg/logger"
)

var (
	ErrNotConnected      = errors.New("armazenamento não conectado")
	ErrConnectionFailure = errors.New("falha de conexão com o armazenamento")
)

const (
	// DefaultConnectTimeout limita cada tentativa de conexão
	DefaultConnectTimeout = 5 * time.Second
	// DefaultRetryDelay é o intervalo fixo entre tentativas
	DefaultRetryDelay = 5 * time.Second
)

// State representa o estado da conexão com o armazenamento
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// String retorna o nome do estado
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Client é o handle de um armazenamento conectado
type Client interface {
	Host() string
	Close(ctx context.Context) error
}

// Monitor expõe o estado da conexão para diagnóstico
type Monitor interface {
	Status() State
	Host() string
	Attempts() int64
}

// DialFunc abre e valida uma conexão com o armazenamento
type DialFunc[C Client] func(ctx context.Context, uri string) (C, error)

type connectorOptions struct {
	connectTimeout time.Duration
	retryDelay     time.Duration
}

// Option altera os tempos do Connector
type Option func(*connectorOptions)

// WithConnectTimeout define o tempo máximo de cada tentativa
func WithConnectTimeout(d time.Duration) Option {
	return func(o *connectorOptions) { o.connectTimeout = d }
}

// WithRetryDelay define o intervalo entre tentativas
func WithRetryDelay(d time.Duration) Option {
	return func(o *connectorOptions) { o.retryDelay = d }
}

// Connector mantém uma única conexão com o armazenamento durante a vida do processo.
// Falhas de conexão nunca encerram o processo: a conexão é tentada novamente
// com intervalo fixo até ter sucesso ou o Connector ser fechado.
type Connector[C Client] struct {
	uri    string
	dial   DialFunc[C]
	logger logger.Logger
	opts   connectorOptions

	state    atomic.Int32
	attempts atomic.Int64

	// serializa tentativas de conexão
	connectMu sync.Mutex

	mu        sync.RWMutex
	client    C
	host      string
	onConnect func(ctx context.Context, client C) error

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewConnector cria um Connector desconectado; chame Start para iniciar as tentativas
func NewConnector[C Client](uri string, dial DialFunc[C], log logger.Logger, opts ...Option) *Connector[C] {
	o := connectorOptions{
		connectTimeout: DefaultConnectTimeout,
		retryDelay:     DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Connector[C]{
		uri:    uri,
		dial:   dial,
		logger: log,
		opts:   o,
	}
}

// OnConnect registra uma função executada a cada conexão, antes de o estado
// passar para connected. Um erro nela conta como falha de conexão.
func (c *Connector[C]) OnConnect(fn func(ctx context.Context, client C) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = fn
}

// Status retorna o estado atual sem bloquear
func (c *Connector[C]) Status() State {
	return State(c.state.Load())
}

// Host retorna o host resolvido da conexão ativa
func (c *Connector[C]) Host() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.host
}

// Attempts retorna quantas tentativas de conexão foram feitas
func (c *Connector[C]) Attempts() int64 {
	return c.attempts.Load()
}

// Client retorna o handle conectado ou ErrNotConnected
func (c *Connector[C]) Client() (C, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Status() != StateConnected {
		var zero C
		return zero, ErrNotConnected
	}
	return c.client, nil
}

// Connect faz uma única tentativa de conexão
func (c *Connector[C]) Connect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.Status() == StateConnected {
		return nil
	}

	c.attempts.Add(1)
	c.state.Store(int32(StateConnecting))

	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.connectTimeout)
	defer cancel()

	client, err := c.dial(attemptCtx, c.uri)
	if err != nil {
		c.state.Store(int32(StateDisconnected))
		return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}

	c.mu.RLock()
	hook := c.onConnect
	c.mu.RUnlock()

	if hook != nil {
		if err := hook(attemptCtx, client); err != nil {
			closeCtx, cancelClose := context.WithTimeout(context.WithoutCancel(ctx), c.opts.connectTimeout)
			defer cancelClose()
			if closeErr := client.Close(closeCtx); closeErr != nil {
				c.logger.Warn("Erro ao fechar conexão após falha de inicialização", "error", closeErr)
			}
			c.state.Store(int32(StateDisconnected))
			return fmt.Errorf("%w: erro ao inicializar armazenamento: %w", ErrConnectionFailure, err)
		}
	}

	c.mu.Lock()
	c.client = client
	c.host = client.Host()
	c.state.Store(int32(StateConnected))
	c.mu.Unlock()

	c.logger.Info("Armazenamento conectado", "host", client.Host())
	return nil
}

// Start inicia em segundo plano o ciclo de tentativas. Chamadas repetidas não têm efeito.
func (c *Connector[C]) Start(ctx context.Context) {
	c.loopMu.Lock()
	defer c.loopMu.Unlock()

	if c.done != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(loopCtx, c.done)
}

func (c *Connector[C]) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	policy := backoff.WithContext(backoff.NewConstantBackOff(c.opts.retryDelay), ctx)

	err := backoff.RetryNotify(func() error {
		return c.Connect(ctx)
	}, policy, func(err error, next time.Duration) {
		c.logger.Error("Erro de conexão com o armazenamento", "error", err, "retry_in", next.String(), "attempt", c.Attempts())
	})
	if err != nil {
		c.logger.Info("Tentativas de conexão interrompidas", "reason", err)
	}
}

// Close interrompe as tentativas pendentes e fecha a conexão ativa
func (c *Connector[C]) Close(ctx context.Context) error {
	c.loopMu.Lock()
	cancel, done := c.cancel, c.done
	c.loopMu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Status() != StateConnected {
		c.state.Store(int32(StateDisconnected))
		return nil
	}

	client := c.client
	var zero C
	c.client = zero
	c.state.Store(int32(StateDisconnected))

	if err := client.Close(ctx); err != nil {
		return fmt.Errorf("erro ao fechar conexão: %w", err)
	}
	return nil
}
