package model

import (
	"time"
)

const (
	TableName  = "subscribers"
	EntityName = "subscriber"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldSubscribedAt = "subscribed_at"
	FieldActive       = "active"
)

// Subscriber is a blog mailing-list entry. Email is unique across the
// collection; a duplicate subscription returns the existing record.
type Subscriber struct {
	ID           string    `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
	Active       bool      `db:"active"        json:"active"`
}
