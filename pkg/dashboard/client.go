// Package dashboard loads dashboard items from the backend and keeps the
// last known state.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/notifications"
)

const (
	// LoadFailedMessage is shown in State when the backend gives nothing better.
	LoadFailedMessage = "Failed to load dashboard data"
	// RefreshedMessage is the ticket message registered by Refresh.
	RefreshedMessage = "Dashboard data updated."

	// debugTicket is never registered, so errors from TriggerError take the
	// stale ticket path and fall back to the normalized message.
	debugTicket = "DEBUG_ERROR"

	itemsKey = "items"
)

// State is a snapshot of the client's view of the dashboard.
type State struct {
	Items   []Item
	Loading bool
	Loaded  bool
	Error   string
}

// Client talks to the dashboard endpoints. Requests should go through a
// notification-aware transport so tickets attached by Load are resolved.
type Client struct {
	api      *apiclient.Client
	notifier *notifications.Service
	group    singleflight.Group
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

// New creates a Client on top of api. notifier registers the tickets used
// by Refresh and resolves tickets of deduplicated loads.
func New(api *apiclient.Client, notifier *notifications.Service, opts ...Option) *Client {
	c := &Client{
		api:      api,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("dashboard"))
	return c
}

// State returns a copy of the current state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.Items = append([]Item(nil), c.state.Items...)
	return s
}

// Load fetches all items. ticketID, when not empty, is attached to the
// request so its notification is presented on completion.
//
// Concurrent calls share one request and every caller's ticket is resolved
// with its outcome. A caller whose ctx ends first returns ctx.Err() and
// keeps its ticket; the request still completes for the others.
func (c *Client) Load(ctx context.Context, ticketID string) ([]Item, error) {
	return c.load(ctx, ticketID, nil)
}

// LoadUnauthorized asks the backend to reject the session, which exercises
// the logout path of callers.
func (c *Client) LoadUnauthorized(ctx context.Context) ([]Item, error) {
	return c.load(ctx, "", url.Values{"debug": {string(apierror.CodeDashboardUnauthorized)}})
}

// EnsureLoaded returns the cached items, loading them once when needed.
func (c *Client) EnsureLoaded(ctx context.Context) ([]Item, error) {
	c.mu.RLock()
	loaded, items := c.state.Loaded, c.state.Items
	c.mu.RUnlock()
	if loaded {
		return append([]Item(nil), items...), nil
	}
	return c.Load(ctx, "")
}

// Refresh reloads items and announces "Dashboard data updated." on success.
func (c *Client) Refresh(ctx context.Context) ([]Item, error) {
	id, err := c.notifier.RegisterTicket(ctx, notifications.NewOptions(RefreshedMessage, notifications.TypeSuccess))
	if err != nil {
		return nil, errors.Join(ErrRefresh, err)
	}
	return c.Load(ctx, id)
}

// Item fetches one item by id.
func (c *Client) Item(ctx context.Context, id string) (Item, error) {
	var dto ItemDTO
	if err := c.api.Get(ctx, "/dashboard/items/"+url.PathEscape(id), nil, &dto); err != nil {
		return Item{}, errors.Join(ErrLoadItem, err)
	}
	return ToItem(dto), nil
}

// TriggerError calls the failing debug endpoint.
func (c *Client) TriggerError(ctx context.Context) error {
	return c.api.Get(notifications.WithTicket(ctx, debugTicket), "/debug/error", nil, nil)
}

func (c *Client) load(ctx context.Context, ticketID string, query url.Values) ([]Item, error) {
	key := itemsKey
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	c.setLoading()
	leader := false
	ch := c.group.DoChan(key, func() (any, error) {
		leader = true
		return c.fetch(ctx, query)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		// The shared request keeps running for the other callers. This
		// caller's ticket stays registered.
		return nil, errors.Join(ErrLoadItems, ctx.Err())
	}

	// Every caller resolves its own ticket. Without one, only the caller
	// that started the request reports its outcome.
	switch {
	case ticketID != "":
		c.notifier.Resolve(notifications.WithTicket(ctx, ticketID), res.Err)
	case leader:
		c.notifier.Resolve(ctx, res.Err)
	}

	if res.Err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "dashboard load failed", logger.Error(res.Err))
		return nil, errors.Join(ErrLoadItems, res.Err)
	}
	return append([]Item(nil), res.Val.([]Item)...), nil
}

// fetch runs the shared request. It outlives the cancellation of the
// caller that started it, and the transport stays silent because callers
// resolve the outcome themselves.
func (c *Client) fetch(ctx context.Context, query url.Values) ([]Item, error) {
	ctx = notifications.WithFeedback(context.WithoutCancel(ctx), notifications.FeedbackConfig{SuppressErrors: true})

	var dtos []ItemDTO
	if err := c.api.Get(ctx, "/dashboard/items", query, &dtos); err != nil {
		c.setError(apierror.ParseMessage(err, LoadFailedMessage))
		return nil, err
	}
	items := ToItems(dtos)
	c.setItems(items)
	return items, nil
}

func (c *Client) setLoading() {
	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()
}

func (c *Client) setItems(items []Item) {
	c.mu.Lock()
	c.state = State{Items: items, Loaded: true}
	c.mu.Unlock()
}

func (c *Client) setError(msg string) {
	c.mu.Lock()
	c.state.Loading = false
	c.state.Error = msg
	c.mu.Unlock()
}
