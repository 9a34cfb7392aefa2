package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProductCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &models.ProductDB{
		ProductID:   uuid.New(),
		Name:        "Widget",
		Price:       9.99,
		Description: "test",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	tests := []struct {
		name            string
		mockSetup       func(m *MockProductCreator)
		expectedCode    int
		expectedMessage string
		rawBody         bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Widget", 9.99, "test").
					Return(created, nil)
			},
			expectedCode: 200,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Widget", 9.99, "test").
					Return(nil, errors.New("insert failed"))
			},
			expectedCode:    500,
			expectedMessage: "Internal server error",
		},
		{
			name:            "invalid json",
			rawBody:         true,
			expectedCode:    400,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProductCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewProductCreateHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(ProductRequest{Name: "Widget", Price: 9.99, Description: "test"})
				req = httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedMessage != "" {
				var resp ProductErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				return
			}

			var got models.ProductDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, created.ProductID, got.ProductID)
			assert.Equal(t, "Widget", got.Name)
			assert.Equal(t, 9.99, got.Price)
			assert.Equal(t, "test", got.Description)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}
