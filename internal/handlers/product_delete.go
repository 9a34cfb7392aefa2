package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/services"
)

// ProductDeleter defines the interface that the deletion service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ProductDeleteResponse represents a successful deletion response
// swagger:model ProductDeleteResponse
type ProductDeleteResponse struct {
	// Success message
	// default: Product deleted successfully
	Message string `json:"message"`
}

// NewProductDeleteHandler returns an HTTP handler deleting a product by id.
// @Summary Delete a product
// @Description Removes an existing product
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} handlers.ProductDeleteResponse "Product deleted"
// @Failure 404 {object} handlers.ProductErrorResponse "Product not found"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [delete]
func NewProductDeleteHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Product not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), productID); err != nil {
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
		json.NewEncoder(w).Encode(ProductDeleteResponse{
			Message: "Product deleted successfully",
		})
	}
}
