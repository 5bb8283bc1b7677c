// Package notifications correlates user-facing notifications with the
// outcome of asynchronous operations.
//
// A caller that knows what it wants to announce registers a ticket before
// starting the operation and attaches the ticket id to the operation's
// context. When the operation completes, the Service decides exactly once
// what to present:
//
//   - success with a ticket presents the ticket;
//   - success with inline feedback presents the feedback message;
//   - failure presents an error built from the ticket, the normalized error
//     message and DefaultErrorNotification, unless feedback suppresses it.
//
// # Usage
//
//	svc := notifications.NewService(presenter, notifications.WithLogger(log))
//	client := svc.Client()
//
//	id, _ := svc.RegisterTicket(ctx, notifications.NewOptions("Saved!", notifications.TypeSuccess))
//	req, _ := http.NewRequestWithContext(notifications.WithTicket(ctx, id), http.MethodPost, url, body)
//	resp, err := client.Do(req)
//
// Requests that only need a success message use inline feedback:
//
//	ctx = notifications.WithFeedbackMessage(ctx, "Profile updated")
//
// Non-HTTP work goes through Track:
//
//	n, err := notifications.Track(ctx, svc, func(ctx context.Context) (int, error) {
//		return repo.Import(ctx, rows)
//	})
//
// # Registry
//
// Tickets live in a Store. MemoryStore publishes copy-on-write snapshots and
// consumes tickets atomically; RedisStore shares tickets between processes
// using SETNX and GETDEL. A ticket whose operation is cancelled stays
// registered until cleared.
//
// # Presenters
//
// A Presenter shows resolved notifications. LogPresenter writes log records,
// BroadcastPresenter streams toasts to server-sent events clients and
// MultiPresenter combines several on a best effort basis.
package notifications
