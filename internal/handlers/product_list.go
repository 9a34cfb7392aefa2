package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/models"
)

// ProductLister defines the interface that the listing service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductErrorResponse represents an error response for product operations
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	// default: Product not found
	Message string `json:"message"`
}

// NewProductListHandler returns an HTTP handler listing all products.
// @Summary List products
// @Description Returns all products ordered by creation time, newest first
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductDB "Product records"
// @Failure 500 {object} handlers.ProductErrorResponse "Internal server error"
// @Router /products [get]
func NewProductListHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(products)
	}
}
