package comment

import (
	"strings"
	"time"

	"gearshare/internal/pkg/errs"
)

var ErrEmptyText = errs.Validation("comment text cannot be empty")

// Comment is feedback left on an item by a renter with a completed booking.
// The creation timestamp is server-assigned, never client-supplied.
type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

func New(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }
