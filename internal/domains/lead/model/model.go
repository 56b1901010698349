package model

import (
	"time"
)

const (
	TableName  = "leads"
	EntityName = "lead"

	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldCreatedAt = "created_at"
)

// Lead is a callback request captured from the website. Phone is the primary
// contact channel; email and message are optional.
type Lead struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Phone     string    `db:"phone"      json:"phone"`
	Email     string    `db:"email"      json:"email"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
