package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClient_RegisterAndLogin(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register":
			assert.Equal(t, http.MethodPost, r.Method)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "john", body["username"])
			assert.Equal(t, "john@example.com", body["email"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "User registered successfully",
				"user":    models.UserDB{UserID: userID, Username: "john", Email: "john@example.com"},
			})
		case "/login":
			assert.Equal(t, http.MethodPost, r.Method)
			json.NewEncoder(w).Encode(map[string]any{
				"user":  models.UserDB{UserID: userID, Username: "john", Email: "john@example.com"},
				"token": "token123",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	user, err := c.Register(ctx, "john", "secret", "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.UserID)

	user, token, err := c.Login(ctx, "john@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, userID, user.UserID)
}

func TestClient_Login_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Incorrect password"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	user, token, err := c.Login(context.Background(), "john@example.com", "wrong")
	assert.EqualError(t, err, "Incorrect password")
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestClient_ProductOperations(t *testing.T) {
	productID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/products" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]models.ProductDB{
				{ProductID: productID, Name: "Widget", Price: 9.99, Description: "test"},
			})
		case r.URL.Path == "/products" && r.Method == http.MethodPost:
			// Mutations carry the session token
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(models.ProductDB{ProductID: productID, Name: "Widget", Price: 9.99, Description: "test"})
		case r.URL.Path == "/products/"+productID.String() && r.Method == http.MethodPut:
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Product updated successfully",
				"product": models.ProductDB{ProductID: productID, Name: "Widget v2", Price: 14.99},
			})
		case r.URL.Path == "/products/"+productID.String() && r.Method == http.MethodDelete:
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted successfully"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("token123"))
	ctx := context.Background()

	products, err := c.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)

	created, err := c.CreateProduct(ctx, "Widget", 9.99, "test")
	assert.NoError(t, err)
	assert.Equal(t, productID, created.ProductID)

	updated, err := c.UpdateProduct(ctx, productID, "Widget v2", 14.99, "")
	assert.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)

	err = c.DeleteProduct(ctx, productID)
	assert.NoError(t, err)
}

func TestClient_DeleteProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.DeleteProduct(context.Background(), uuid.New())
	assert.EqualError(t, err, "Product not found")
}

func TestClient_ErrorBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.ListProducts(context.Background())
	assert.EqualError(t, err, "request failed with status 500")
}
