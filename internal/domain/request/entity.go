package request

import (
	"strings"
	"time"

	"gearshare/internal/pkg/errs"
)

var ErrEmptyDescription = errs.Validation("request description cannot be empty")

// Request is a wanted-item post; items may later be listed against it.
type Request struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

func New(requesterID int64, description string, now time.Time) (*Request, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		description: description,
		requesterID: requesterID,
		created:     now,
	}, nil
}

func (r *Request) ID() int64           { return r.id }
func (r *Request) Description() string { return r.description }
func (r *Request) RequesterID() int64  { return r.requesterID }
func (r *Request) Created() time.Time  { return r.created }
