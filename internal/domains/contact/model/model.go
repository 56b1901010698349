package model

import (
	"time"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldCreatedAt = "created_at"
)

const (
	DefaultSubject = "General Inquiry"
)

// Contact is a single contact-form submission. Immutable after creation.
type Contact struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Subject   string    `db:"subject"    json:"subject"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
