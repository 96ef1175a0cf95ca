// Package models holds shared repository-layer types (pagination results).
package models

// PaginateResult is the envelope returned by paginated finds.
type PaginateResult[T any] struct {
	// Current page (1-based)
	Page int64 `json:"page" bson:"page"`
	// Items per page
	Limit int64 `json:"limit" bson:"limit"`
	// Items in the current page
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// The page of items
	Items []T `json:"items" bson:"items"`
	// Total items matching the filter
	Total int64 `json:"total" bson:"total"`
	// Total pages
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
