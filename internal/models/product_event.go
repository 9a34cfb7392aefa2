package models

// Product event actions published to Kafka after successful mutations.
const (
	ProductCreated = "created"
	ProductUpdated = "updated"
	ProductDeleted = "deleted"
)

// ProductEvent is the message body published for every product mutation.
type ProductEvent struct {
	EventID   string  `json:"event_id"`   // Unique event id
	ProductID string  `json:"product_id"` // Affected product
	Action    string  `json:"action"`     // created / updated / deleted
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Timestamp int64   `json:"timestamp"` // Unix seconds
}
