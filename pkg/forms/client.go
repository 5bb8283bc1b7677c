// Package forms loads dynamic form schemas and submits form values.
package forms

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

const (
	LoadFailedMessage   = "Failed to load form configuration"
	SubmitFailedMessage = "Submission failed"
	SubmittedMessage    = "Form submitted successfully!"
)

// State is the client's view of the current form.
type State struct {
	Config     *Config
	Loading    bool
	Submitting bool
	Error      string
}

// Client loads and submits forms. It reports failures itself, so its
// requests suppress the transport's generic error notification.
type Client struct {
	api      *apiclient.Client
	notifier *notifications.Service
	logger   *slog.Logger

	mu    sync.RWMutex
	state State
}

type Option func(*Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(api *apiclient.Client, notifier *notifications.Service, opts ...Option) *Client {
	c := &Client{
		api:      api,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("forms"))
	return c
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Load fetches the schema of formID and makes it current.
func (c *Client) Load(ctx context.Context, formID string) (*Config, error) {
	c.update(func(s *State) {
		s.Loading = true
		s.Error = ""
	})

	ctx = notifications.WithFeedback(ctx, notifications.FeedbackConfig{SuppressErrors: true})
	var cfg Config
	if err := c.api.Get(ctx, "/forms/"+url.PathEscape(formID), nil, &cfg); err != nil {
		c.fail(ctx, err, LoadFailedMessage, func(s *State) { s.Loading = false })
		c.logger.LogAttrs(ctx, slog.LevelWarn, "form load failed",
			slog.String("form_id", formID),
			logger.Error(err),
		)
		return nil, errors.Join(ErrLoadForm, err)
	}

	c.update(func(s *State) {
		s.Config = &cfg
		s.Loading = false
	})
	return &cfg, nil
}

// Submit sends values for the current form. Success is announced with
// "Form submitted successfully!".
func (c *Client) Submit(ctx context.Context, values Values) (SubmitResult, error) {
	c.mu.RLock()
	cfg := c.state.Config
	c.mu.RUnlock()
	if cfg == nil {
		return SubmitResult{}, ErrNoForm
	}

	c.update(func(s *State) {
		s.Submitting = true
		s.Error = ""
	})

	ctx = notifications.WithFeedback(ctx, notifications.FeedbackConfig{
		Message:        SubmittedMessage,
		Type:           notifications.TypeSuccess,
		SuppressErrors: true,
	})
	var result SubmitResult
	if err := c.api.Post(ctx, "/forms/"+url.PathEscape(cfg.ID)+"/submit", values, &result); err != nil {
		c.fail(ctx, err, SubmitFailedMessage, func(s *State) { s.Submitting = false })
		return SubmitResult{}, errors.Join(ErrSubmitForm, err)
	}

	c.update(func(s *State) { s.Submitting = false })
	return result, nil
}

// fail records and announces err.
func (c *Client) fail(ctx context.Context, err error, fallback string, fn func(*State)) {
	msg := apierror.ParseMessage(err, fallback)
	c.update(func(s *State) {
		fn(s)
		s.Error = msg
	})
	if !errors.Is(err, context.Canceled) {
		c.notifier.NotifyError(ctx, msg)
	}
}

func (c *Client) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
}
