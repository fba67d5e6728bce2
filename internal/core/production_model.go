package core

import "time"

// ProductionRecord is one completed production event. Rows are append-only:
// a record exists only for events whose material decrements all committed.
type ProductionRecord struct {
	ID          int       `json:"id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UserID      int       `json:"user_id"`
	ProducedAt  time.Time `json:"produced_at"`
}

// ProductionResult is returned by a successful Produce call: the appended
// record plus the post-commit state of every affected material.
type ProductionResult struct {
	Record    ProductionRecord `json:"record"`
	Materials []Material       `json:"materials"`
}
