package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wintryx/progressmaker/pkg/broadcast"
	"github.com/wintryx/progressmaker/pkg/logger"
)

// Toast is a presented notification as seen by stream subscribers.
type Toast struct {
	ID           string    `json:"id"`
	Notification Options   `json:"notification"`
	CreatedAt    time.Time `json:"created_at"`
}

// BroadcastPresenter fans presented notifications out to live subscribers,
// typically browsers connected to its server-sent events stream.
type BroadcastPresenter struct {
	broadcaster broadcast.Broadcaster[Toast]
	heartbeat   time.Duration
	logger      *slog.Logger
}

type BroadcastPresenterOption func(*BroadcastPresenter)

func WithBroadcastLogger(l *slog.Logger) BroadcastPresenterOption {
	return func(p *BroadcastPresenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHeartbeat sets how often an idle stream receives a keep-alive comment.
func WithHeartbeat(d time.Duration) BroadcastPresenterOption {
	return func(p *BroadcastPresenter) {
		if d > 0 {
			p.heartbeat = d
		}
	}
}

func NewBroadcastPresenter(bufferSize int, opts ...BroadcastPresenterOption) *BroadcastPresenter {
	p := &BroadcastPresenter{
		broadcaster: broadcast.NewMemoryBroadcaster[Toast](bufferSize),
		heartbeat:   15 * time.Second,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *BroadcastPresenter) Present(ctx context.Context, opts Options) error {
	return p.broadcaster.Broadcast(ctx, broadcast.Message[Toast]{Data: Toast{
		ID:           uuid.NewString(),
		Notification: opts,
		CreatedAt:    time.Now().UTC(),
	}})
}

// Subscribe returns a subscription that lives as long as ctx.
func (p *BroadcastPresenter) Subscribe(ctx context.Context) broadcast.Subscriber[Toast] {
	return p.broadcaster.Subscribe(ctx)
}

func (p *BroadcastPresenter) Close() error {
	return p.broadcaster.Close()
}

// ServeHTTP streams toasts as server-sent events until the client goes away.
func (p *BroadcastPresenter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, ErrStreamUnsupported.Error(), http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	sub := p.Subscribe(ctx)
	defer sub.Close()

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(p.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg, ok := <-sub.Receive():
			if !ok {
				return
			}
			data, err := json.Marshal(msg.Data)
			if err != nil {
				p.logger.LogAttrs(ctx, slog.LevelError, "failed to encode toast", logger.Error(err))
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: toast\ndata: %s\n\n", msg.Data.ID, data)
			flusher.Flush()
		}
	}
}
