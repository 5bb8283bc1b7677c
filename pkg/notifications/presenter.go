package notifications

import (
	"context"
	"log/slog"

	"github.com/wintryx/progressmaker/pkg/logger"
)

// Presenter shows a resolved notification to the user.
type Presenter interface {
	// Present displays opts. When opts.ClearExisting is set, any visible
	// notification is dismissed first.
	Present(ctx context.Context, opts Options) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, opts Options) error

func (f PresenterFunc) Present(ctx context.Context, opts Options) error {
	return f(ctx, opts)
}

// NoOpPresenter discards every notification.
type NoOpPresenter struct{}

func (NoOpPresenter) Present(context.Context, Options) error { return nil }

// MultiPresenter forwards to several presenters on a best effort basis.
type MultiPresenter struct {
	presenters []Presenter
	logger     *slog.Logger
}

type MultiPresenterOption func(*MultiPresenter)

func WithMultiPresenterLogger(l *slog.Logger) MultiPresenterOption {
	return func(m *MultiPresenter) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewMultiPresenter(presenters []Presenter, opts ...MultiPresenterOption) *MultiPresenter {
	m := &MultiPresenter{
		presenters: presenters,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Present never fails; individual failures are logged.
func (m *MultiPresenter) Present(ctx context.Context, opts Options) error {
	for i, p := range m.presenters {
		if err := p.Present(ctx, opts); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to present notification",
				logger.NotificationType(opts.Type),
				slog.Int("presenter_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

// LogPresenter writes each notification as a log record. The level follows
// the notification type.
type LogPresenter struct {
	logger *slog.Logger
}

func NewLogPresenter(l *slog.Logger) *LogPresenter {
	if l == nil {
		l = slog.Default()
	}
	return &LogPresenter{logger: l}
}

func (p *LogPresenter) Present(ctx context.Context, opts Options) error {
	p.logger.LogAttrs(ctx, levelFor(opts.Type), opts.Message,
		logger.NotificationType(opts.Type),
		slog.String("action_label", opts.ActionLabel),
		slog.Bool("clear_existing", opts.ClearExisting),
		logger.Duration(opts.Duration),
	)
	return nil
}

func levelFor(t Type) slog.Level {
	switch t {
	case TypeError:
		return slog.LevelError
	case TypeWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
