package item

import (
	"strings"

	"gearshare/internal/pkg/errs"
)

var (
	ErrEmptyName        = errs.Validation("item name cannot be empty")
	ErrEmptyDescription = errs.Validation("item description cannot be empty")
)

// Item is a listed rental object. The owner is set once at creation and never
// reassigned; the availability flag gates new bookings only.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func New(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }
