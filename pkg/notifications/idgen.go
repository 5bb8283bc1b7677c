package notifications

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns a new opaque ticket id.
type IDGenerator func() string

// NewTicketID returns a random UUID, or a timestamp+random id when the
// secure random source fails.
func NewTicketID() string {
	return ticketID(uuid.NewRandom, time.Now)
}

func ticketID(random func() (uuid.UUID, error), now func() time.Time) string {
	id, err := random()
	if err == nil {
		return id.String()
	}
	return strconv.FormatInt(now().UnixNano(), 36) + "-" + strconv.FormatUint(rand.Uint64(), 36)
}
