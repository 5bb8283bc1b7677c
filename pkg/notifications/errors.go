package notifications

import "errors"

var (
	ErrTicketNotFound    = errors.New("notifications: ticket not found")
	ErrTicketExists      = errors.New("notifications: ticket already exists")
	ErrRegisterTicket    = errors.New("notifications: failed to register ticket")
	ErrTicketIDExhausted = errors.New("notifications: could not generate a unique ticket id")
	ErrStoreUnavailable  = errors.New("notifications: ticket store unavailable")
	ErrInvalidType       = errors.New("notifications: invalid notification type")
	ErrInvalidTicket     = errors.New("notifications: invalid ticket record")
	ErrUnknownStore      = errors.New("notifications: unknown store kind")
	ErrStreamUnsupported = errors.New("notifications: response writer does not support streaming")
)
