package dto

import (
	"bizdesk/shared/constant"
)

// QueryParams describes ordering and an optional row limit for list reads.
// List endpoints return the full collection newest first; the limit is only
// used by the recent-activity admin views.
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// NewestFirst returns the ordering every list operation uses.
func NewestFirst(limit int) QueryParams {
	return QueryParams{
		Limit:   limit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.SortDirDesc,
	}
}
