package notifications

import (
	"context"
	"log/slog"

	"github.com/wintryx/progressmaker/pkg/logger"
)

// FeedbackConfig is inline feedback for a single operation, used instead of
// a registered ticket.
type FeedbackConfig struct {
	Message        string
	Type           Type
	SuppressErrors bool
}

// Correlation is what an operation carries to the point where its outcome
// is resolved. At most one of TicketID and Feedback is set.
type Correlation struct {
	TicketID string
	Feedback FeedbackConfig
}

type correlationKey struct{}

// WithTicket attaches a ticket id to ctx, replacing any earlier correlation.
func WithTicket(ctx context.Context, ticketID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, Correlation{TicketID: ticketID})
}

// WithFeedback attaches inline feedback to ctx, replacing any earlier
// correlation. An unspecified type becomes TypeSuccess.
func WithFeedback(ctx context.Context, cfg FeedbackConfig) context.Context {
	if cfg.Type == 0 {
		cfg.Type = TypeSuccess
	}
	return context.WithValue(ctx, correlationKey{}, Correlation{Feedback: cfg})
}

// WithFeedbackMessage is WithFeedback with only a success message.
func WithFeedbackMessage(ctx context.Context, message string) context.Context {
	return WithFeedback(ctx, FeedbackConfig{Message: message})
}

// CorrelationFromContext returns the correlation attached to ctx, or the
// zero Correlation.
func CorrelationFromContext(ctx context.Context) Correlation {
	if ctx == nil {
		return Correlation{}
	}
	c, _ := ctx.Value(correlationKey{}).(Correlation)
	return c
}

// TicketFromContext returns the ticket id attached to ctx, if any.
func TicketFromContext(ctx context.Context) string {
	return CorrelationFromContext(ctx).TicketID
}

// LoggerExtractor adds the correlated ticket id to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := TicketFromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.TicketID(id), true
	}
}
