package model

import (
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID        = "id"
	FieldService   = "service"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldMessage   = "message"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists every status an appointment may carry. Transitions are
// deliberately unrestricted: any stored appointment may be moved to any
// status, including out of completed or cancelled.
func Statuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Appointment struct {
	ID        string    `db:"id"         json:"id"`
	Service   string    `db:"service"    json:"service"`
	Date      string    `db:"date"       json:"date"`
	Time      string    `db:"time"       json:"time"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Address   string    `db:"address"    json:"address"`
	Message   string    `db:"message"    json:"message"`
	Status    string    `db:"status"     json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
