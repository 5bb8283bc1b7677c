package cli

import (
	"io"
	"log/slog"

	"github.com/wintryx/progressmaker/pkg/environment"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/notifications"
	"github.com/wintryx/progressmaker/pkg/requestid"
)

// AppConfig holds process wide settings.
type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"progressmaker"`
	LogLevel string `env:"LOG_LEVEL"`
}

func newLogger(cfg AppConfig, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithOutput(out),
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			notifications.LoggerExtractor(),
		),
	)
}
