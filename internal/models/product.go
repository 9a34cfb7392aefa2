package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductDB represents a product record in the database.
type ProductDB struct {
	ProductID   uuid.UUID `json:"id" db:"product_id"`         // Primary key
	Name        string    `json:"name" db:"name"`             // Product name
	Price       float64   `json:"price" db:"price"`           // Non-negative price
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // Set at creation, immutable
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
