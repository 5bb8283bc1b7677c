package httpserver

import "time"

// Config is the listener configuration of the served app. WriteTimeout is
// off by default because the toast stream keeps responses open.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero values keep the defaults and
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromCfg := []Option{
		func(c *config) {
			if cfg.Addr != "" {
				c.addr = cfg.Addr
			}
			c.readTimeout = max(cfg.ReadTimeout, 0)
			c.writeTimeout = max(cfg.WriteTimeout, 0)
			c.idleTimeout = max(cfg.IdleTimeout, 0)
			if cfg.ShutdownTimeout > 0 {
				c.shutdownTimeout = cfg.ShutdownTimeout
			}
		},
	}
	return New(append(fromCfg, opts...)...)
}
