package model

import (
	"time"
)

const (
	TableName  = "services"
	EntityName = "catalog_service"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldCreatedAt   = "created_at"
)

const (
	DefaultCategory = "general"
)

// Service is an offered line of business shown on the public site. Price is
// display text ("Starting from ₹15,000"), not an amount.
type Service struct {
	ID          string    `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Price       string    `db:"price"       json:"price"`
	Category    string    `db:"category"    json:"category"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
}

// Seed returns the default catalog shown before anyone has added services.
// Timestamps are backdated in listing order so newest-first listing keeps the
// catalog in its intended sequence.
func Seed(now time.Time, newID func() string) []Service {
	defaults := []Service{
		{
			Title:       "CCTV Surveillance",
			Description: "Professional CCTV installation and monitoring services",
			Price:       "Starting from ₹15,000",
			Category:    "security",
		},
		{
			Title:       "Networking Solutions",
			Description: "Complete networking infrastructure setup and maintenance",
			Price:       "Starting from ₹8,000",
			Category:    "networking",
		},
		{
			Title:       "EPABX Systems",
			Description: "Advanced office communication systems",
			Price:       "Starting from ₹12,000",
			Category:    "communication",
		},
		{
			Title:       "Biometric Access Control",
			Description: "Smart biometric solutions for security and attendance",
			Price:       "Starting from ₹10,000",
			Category:    "security",
		},
	}

	for i := range defaults {
		defaults[i].ID = newID()
		defaults[i].CreatedAt = now.Add(-time.Duration(i) * time.Second)
	}

	return defaults
}
