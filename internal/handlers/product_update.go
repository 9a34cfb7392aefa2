package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/models"
	"github.com/sbilibin2017/product-catalog/internal/services"
)

// ProductUpdater defines the interface that the update service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, productID uuid.UUID, name string, price float64, description string) (*models.ProductDB, error)
}

// ProductUpdateResponse represents a successful update response
// swagger:model ProductUpdateResponse
type ProductUpdateResponse struct {
	// Success message
	// default: Product updated successfully
	Message string `json:"message"`

	// Updated product record
	Product *models.ProductDB `json:"product"`
}

// NewProductUpdateHandler returns an HTTP handler updating a product by id.
// @Summary Update a product
// @Description Replaces the fields of an existing product. The creation timestamp is immutable.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param productRequest body handlers.ProductRequest true "Product fields"
// @Success 200 {object} handlers.ProductUpdateResponse "Product updated"
// @Failure 400 {object} handlers.ProductErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [put]
func NewProductUpdateHandler(svc ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Product not found",
			})
			return
		}

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		product, err := svc.Update(r.Context(), productID, req.Name, req.Price, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Message: "Product not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProductUpdateResponse{
			Message: "Product updated successfully",
			Product: product,
		})
	}
}
