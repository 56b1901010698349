package model

import (
	"time"
)

const (
	TableName  = "faqs"
	EntityName = "faq"

	FieldID           = "id"
	FieldQuestion     = "question"
	FieldAnswer       = "answer"
	FieldCategory     = "category"
	FieldDisplayOrder = "display_order"
	FieldCreatedAt    = "created_at"
)

const (
	DefaultCategory     = "general"
	DefaultDisplayOrder = 1
)

// FAQ is a public question/answer entry. Listing order is display_order
// ascending, then creation time ascending, unlike the record collections
// which list newest first.
type FAQ struct {
	ID           string    `db:"id"            json:"id"`
	Question     string    `db:"question"      json:"question"`
	Answer       string    `db:"answer"        json:"answer"`
	Category     string    `db:"category"      json:"category"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

// Seed returns the default FAQ entries shown before anyone has added their own.
func Seed(now time.Time, newID func() string) []FAQ {
	defaults := []FAQ{
		{
			Question: "What services do you provide?",
			Answer:   "We provide CCTV installation, networking solutions, EPABX systems, and biometric access control systems for homes and businesses.",
			Category: "services",
		},
		{
			Question: "Do you offer maintenance services?",
			Answer:   "Yes, we provide comprehensive maintenance and 24/7 support for all our installations including regular check-ups and emergency repairs.",
			Category: "support",
		},
		{
			Question: "What areas do you serve?",
			Answer:   "We serve across Hyderabad and surrounding areas. Contact us to confirm service availability in your location.",
			Category: "coverage",
		},
		{
			Question: "How long does installation take?",
			Answer:   "Installation time varies by project size. Typical CCTV systems take 1-2 days, while comprehensive networking solutions may take 3-5 days.",
			Category: "installation",
		},
		{
			Question: "Do you provide warranty?",
			Answer:   "Yes, we provide 1-year warranty on all installations and 6 months warranty on service calls.",
			Category: "warranty",
		},
	}

	for i := range defaults {
		defaults[i].ID = newID()
		defaults[i].DisplayOrder = i + 1
		defaults[i].CreatedAt = now
	}

	return defaults
}
