package mockapi

import "time"

// Config configures the mock backend.
type Config struct {
	BasePath string        `env:"MOCK_API_BASE_PATH" envDefault:"/api"`
	Latency  time.Duration `env:"MOCK_API_LATENCY" envDefault:"800ms"`
}

// NewFromConfig builds an API from cfg. Explicit options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*API, error) {
	return New(append([]Option{WithBasePath(cfg.BasePath), WithLatency(cfg.Latency)}, opts...)...)
}
