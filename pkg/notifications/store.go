package notifications

import "context"

// Store holds registered tickets until they are consumed.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores opts under id. It returns ErrTicketExists if id is taken.
	Save(ctx context.Context, id string, opts Options) error

	// Get returns the options for id without consuming them.
	Get(ctx context.Context, id string) (Options, error)

	// Take atomically reads and deletes id. Of several concurrent callers
	// exactly one receives the options; the rest get ErrTicketNotFound.
	Take(ctx context.Context, id string) (Options, error)

	// Delete removes id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
