package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/models"
)

// ProductCreator defines the interface that the creation service must implement.
type ProductCreator interface {
	Create(ctx context.Context, name string, price float64, description string) (*models.ProductDB, error)
}

// ProductRequest represents the JSON body for product create and update
// swagger:model ProductRequest
type ProductRequest struct {
	// Product name
	// required: true
	// default: Widget
	Name string `json:"name"`

	// Non-negative price
	// required: true
	// default: 9.99
	Price float64 `json:"price"`

	// Description
	// default: test
	Description string `json:"description"`
}

// NewProductCreateHandler returns an HTTP handler creating a product.
// @Summary Create a product
// @Description Inserts a new product with a server-assigned id and creation timestamp
// @Tags products
// @Accept json
// @Produce json
// @Param productRequest body handlers.ProductRequest true "Product fields"
// @Success 200 {object} models.ProductDB "Created product record"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products [post]
func NewProductCreateHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProductRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		product, err := svc.Create(r.Context(), req.Name, req.Price, req.Description)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(product)
	}
}
