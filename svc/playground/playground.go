// Package playground drives the debug endpoints of the backend so each
// notification path can be observed on demand.
package playground

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

var (
	ErrUnsupportedType = errors.New("playground: error notifications cannot be simulated, use SimulateError")
	ErrRegisterTicket  = errors.New("playground: failed to register ticket")
)

// Logouter ends the current user session.
type Logouter interface {
	Logout(ctx context.Context) error
}

// LogoutFunc adapts a function to Logouter.
type LogoutFunc func(ctx context.Context) error

func (f LogoutFunc) Logout(ctx context.Context) error { return f(ctx) }

// Result describes what a simulation did. Simulated failures are expected
// and reported here rather than as errors.
type Result struct {
	TicketID  string        `json:"ticket_id,omitempty"`
	Status    int           `json:"status"`
	Code      apierror.Code `json:"code,omitempty"`
	Message   string        `json:"message,omitempty"`
	LoggedOut bool          `json:"logged_out,omitempty"`
}

type Service struct {
	api      *apiclient.Client
	notifier *notifications.Service
	auth     Logouter
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates the service. Requests made through api must pass the
// notification transport for toasts to appear. auth may be nil.
func New(api *apiclient.Client, notifier *notifications.Service, auth Logouter, opts ...Option) *Service {
	if auth == nil {
		auth = LogoutFunc(func(context.Context) error { return nil })
	}
	s := &Service{
		api:      api,
		notifier: notifier,
		auth:     auth,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("playground"))
	return s
}

// SimulateError calls the failing endpoint. A non-blank customMessage
// replaces the backend's message in the error toast.
func (s *Service) SimulateError(ctx context.Context, customMessage string) (Result, error) {
	id, err := s.errorTicket(ctx, customMessage)
	if err != nil {
		return Result{}, err
	}
	res := s.call(ctx, id, "/debug/error")
	return res, nil
}

// SimulateUnauthorized calls the endpoint rejecting the session and logs
// the user out when the backend reports 401 or AUTH_UNAUTHORIZED.
func (s *Service) SimulateUnauthorized(ctx context.Context, customMessage string) (Result, error) {
	id, err := s.errorTicket(ctx, customMessage)
	if err != nil {
		return Result{}, err
	}

	res := s.call(ctx, id, "/debug/unauthorized")
	if res.Status == http.StatusUnauthorized || res.Code == apierror.CodeUnauthorized {
		if err := s.auth.Logout(ctx); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "logout failed", logger.Error(err))
		} else {
			res.LoggedOut = true
		}
	}
	return res, nil
}

// SimulateNotification announces a successful call with a toast of typ,
// which must not be TypeError. A blank customMessage uses the type's
// default text.
func (s *Service) SimulateNotification(ctx context.Context, customMessage string, typ notifications.Type) (Result, error) {
	if typ == 0 {
		typ = notifications.TypeSuccess
	}
	if typ == notifications.TypeError || !typ.Valid() {
		return Result{}, ErrUnsupportedType
	}

	message := strings.TrimSpace(customMessage)
	if message == "" {
		message = notifications.DefaultMessage(typ)
	}

	id, err := s.notifier.RegisterTicket(ctx, notifications.NewOptions(message, typ))
	if err != nil {
		return Result{}, errors.Join(ErrRegisterTicket, err)
	}
	return s.call(ctx, id, "/debug/success"), nil
}

// errorTicket registers the default error notification carrying
// customMessage. A blank message registers nothing.
func (s *Service) errorTicket(ctx context.Context, customMessage string) (string, error) {
	message := strings.TrimSpace(customMessage)
	if message == "" {
		return "", nil
	}
	opts := notifications.DefaultErrorNotification()
	opts.Message = message
	id, err := s.notifier.RegisterTicket(ctx, opts)
	if err != nil {
		return "", errors.Join(ErrRegisterTicket, err)
	}
	return id, nil
}

func (s *Service) call(ctx context.Context, ticketID, path string) Result {
	if ticketID != "" {
		ctx = notifications.WithTicket(ctx, ticketID)
	}

	res := Result{TicketID: ticketID, Status: http.StatusOK}
	if err := s.api.Get(ctx, path, nil, nil); err != nil {
		n := apierror.Normalize(err, "")
		res.Status = n.Status
		res.Code = n.Code
		res.Message = n.Message
		s.logger.LogAttrs(ctx, slog.LevelDebug, "simulated call failed",
			logger.Path(path),
			logger.Status(n.Status),
			logger.TicketID(ticketID),
		)
	}
	return res
}
