package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/models"
)

// Client is an HTTP client for the product-catalog API. All catalog
// operations go through the backend service; the client never talks to the
// data store directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Opt configures a Client.
type Opt func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Opt {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken sets the session token sent on mutating product requests.
func WithToken(token string) Opt {
	return func(c *Client) { c.token = token }
}

// New creates a new API client for the given base URL.
func New(baseURL string, opts ...Opt) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type registerResponse struct {
	Message string         `json:"message"`
	User    *models.UserDB `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *models.UserDB `json:"user"`
	Token string         `json:"token"`
}

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type productUpdateResponse struct {
	Message string            `json:"message"`
	Product *models.ProductDB `json:"product"`
}

// apiError mirrors the two error body shapes the backend produces.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil {
			if apiErr.Message != "" {
				return errors.New(apiErr.Message)
			}
			if apiErr.Error != "" {
				return errors.New(apiErr.Error)
			}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates a new user account and returns the created record.
func (c *Client) Register(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	var resp registerResponse
	err := c.do(ctx, http.MethodPost, "/register", registerRequest{
		Username: username,
		Password: password,
		Email:    email,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login authenticates by email and returns the user record and session token.
// The token is retained for subsequent mutating requests.
func (c *Client) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	c.token = resp.Token
	return resp.User, resp.Token, nil
}

// ListProducts returns all products, newest first.
func (c *Client) ListProducts(ctx context.Context) ([]models.ProductDB, error) {
	var products []models.ProductDB
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct submits a new product and returns the created record.
func (c *Client) CreateProduct(ctx context.Context, name string, price float64, description string) (*models.ProductDB, error) {
	var product models.ProductDB
	err := c.do(ctx, http.MethodPost, "/products", productRequest{
		Name:        name,
		Price:       price,
		Description: description,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, productID uuid.UUID, name string, price float64, description string) (*models.ProductDB, error) {
	var resp productUpdateResponse
	err := c.do(ctx, http.MethodPut, "/products/"+productID.String(), productRequest{
		Name:        name,
		Price:       price,
		Description: description,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+productID.String(), nil, nil)
}
