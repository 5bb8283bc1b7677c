package notifications

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/logger"
)

// maxIDAttempts bounds regeneration when a generated id collides.
const maxIDAttempts = 3

// ErrorNormalizer turns a failed operation into user-facing text.
type ErrorNormalizer func(err error) string

// Service owns the ticket registry and decides which notification, if any,
// is presented when an operation completes.
//
// None of its notification methods return errors: store and presenter
// failures are logged and the caller's own result is never affected.
type Service struct {
	store                 Store
	presenter             Presenter
	newID                 IDGenerator
	normalize             ErrorNormalizer
	alwaysAnnounceSuccess bool
	logger                *slog.Logger
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithStore(store Store) ServiceOption {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

func WithIDGenerator(gen IDGenerator) ServiceOption {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithAlwaysAnnounceSuccess makes NotifySuccess present a default success
// toast even when neither a ticket nor a message is given.
func WithAlwaysAnnounceSuccess(enabled bool) ServiceOption {
	return func(s *Service) {
		s.alwaysAnnounceSuccess = enabled
	}
}

func WithErrorNormalizer(fn ErrorNormalizer) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.normalize = fn
		}
	}
}

func defaultNormalizer(err error) string {
	return apierror.ParseMessage(err, DefaultMessage(TypeError))
}

// NewService creates a Service backed by an in-memory store.
func NewService(presenter Presenter, opts ...ServiceOption) *Service {
	if presenter == nil {
		presenter = NoOpPresenter{}
	}
	s := &Service{
		store:     NewMemoryStore(),
		presenter: presenter,
		newID:     NewTicketID,
		normalize: defaultNormalizer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("notifications"))
	return s
}

// RegisterTicket stores a copy of opts and returns its new ticket id.
// Zero ActionLabel and Duration take the standard defaults and a zero Type
// becomes TypeSuccess. The in-memory store never fails; remote stores may.
func (s *Service) RegisterTicket(ctx context.Context, opts Options) (string, error) {
	if opts.Type == 0 {
		opts.Type = TypeSuccess
	}
	if opts.ActionLabel == "" {
		opts.ActionLabel = DefaultActionLabel
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}

	for range maxIDAttempts {
		id := s.newID()
		err := s.store.Save(ctx, id, opts)
		if err == nil {
			s.logger.LogAttrs(ctx, slog.LevelDebug, "ticket registered",
				logger.TicketID(id),
				logger.NotificationType(opts.Type),
			)
			return id, nil
		}
		if !errors.Is(err, ErrTicketExists) {
			return "", errors.Join(ErrRegisterTicket, err)
		}
	}
	return "", ErrTicketIDExhausted
}

// Lookup returns the options registered under id without consuming them.
func (s *Service) Lookup(ctx context.Context, id string) (Options, bool) {
	if id == "" {
		return Options{}, false
	}
	opts, err := s.store.Get(ctx, id)
	if err != nil {
		s.logStoreError(ctx, "ticket lookup failed", id, err)
		return Options{}, false
	}
	return opts, true
}

// ClearTicket drops id. Clearing an unknown id does nothing.
func (s *Service) ClearTicket(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.logStoreError(ctx, "ticket clear failed", id, err)
	}
}

// NotifySuccess resolves a successful operation.
//
// With a ticket id, the registered ticket is consumed and presented, its
// message replaced by message when that is non-empty; an unknown ticket
// presents nothing. Without a ticket id, a non-empty message is presented
// with type typ (success when unspecified) and standard options. An empty
// message presents nothing unless always-announce is enabled.
func (s *Service) NotifySuccess(ctx context.Context, ticketID, message string, typ Type) {
	if ticketID != "" {
		opts, ok := s.take(ctx, ticketID)
		if !ok {
			return
		}
		if message != "" {
			opts.Message = message
		}
		s.present(ctx, opts)
		return
	}

	if message != "" {
		s.present(ctx, NewOptions(message, typ))
		return
	}
	if s.alwaysAnnounceSuccess {
		s.present(ctx, DefaultSuccessNotification())
	}
}

// NotifyError presents an error notification. Explicit overrides win, then
// message fills an undefined message, then DefaultErrorNotification fills
// the remaining fields.
func (s *Service) NotifyError(ctx context.Context, message string, overrides ...Override) {
	s.presentError(ctx, Collect(overrides...), message)
}

// NotifyErrorWithTicket presents an error for an operation that registered
// ticketID. The ticket is consumed and its fields serve as defaults beneath
// the explicit overrides. Its message, when present, beats the transport
// message. An unknown ticket behaves like NotifyError.
func (s *Service) NotifyErrorWithTicket(ctx context.Context, ticketID, message string, overrides ...Override) {
	base := Collect(overrides...)
	if ticketID != "" {
		if opts, ok := s.take(ctx, ticketID); ok {
			base = OverridesFrom(opts).Merge(base)
		}
	}
	s.presentError(ctx, base, message)
}

// Resolve applies the notification policy to the outcome of an operation
// whose correlation is carried by ctx. A nil err is a success. Cancelled
// operations are not resolved, so their ticket stays registered.
func (s *Service) Resolve(ctx context.Context, err error) {
	c := CorrelationFromContext(ctx)

	if err == nil {
		switch {
		case c.TicketID != "":
			s.NotifySuccess(ctx, c.TicketID, "", 0)
		case c.Feedback.Message != "":
			s.NotifySuccess(ctx, "", c.Feedback.Message, c.Feedback.Type)
		}
		return
	}

	if errors.Is(err, context.Canceled) {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "operation cancelled, ticket left registered",
			logger.TicketID(c.TicketID),
		)
		return
	}
	if c.Feedback.SuppressErrors {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "error notification suppressed", logger.Error(err))
		return
	}

	message := s.normalize(err)
	if c.TicketID != "" {
		s.NotifyErrorWithTicket(ctx, c.TicketID, message)
		return
	}
	s.NotifyError(ctx, message)
}

// presentError treats an empty message override as undefined.
func (s *Service) presentError(ctx context.Context, base Overrides, message string) {
	if base.Message == nil || *base.Message == "" {
		base.Message = &message
	}
	s.present(ctx, base.Fill(DefaultErrorNotification()))
}

func (s *Service) take(ctx context.Context, id string) (Options, bool) {
	opts, err := s.store.Take(ctx, id)
	if err != nil {
		s.logStoreError(ctx, "ticket take failed", id, err)
		return Options{}, false
	}
	return opts, true
}

func (s *Service) present(ctx context.Context, opts Options) {
	opts = opts.normalized()
	if err := s.presenter.Present(ctx, opts); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to present notification",
			logger.NotificationType(opts.Type),
			logger.Error(err),
		)
	}
}

func (s *Service) logStoreError(ctx context.Context, msg, id string, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrTicketNotFound) {
		level = slog.LevelDebug
	}
	s.logger.LogAttrs(ctx, level, msg, logger.TicketID(id), logger.Error(err))
}
