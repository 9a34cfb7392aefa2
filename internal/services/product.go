package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrProductNotFound is returned when the requested product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductReader defines read operations over the product store.
type ProductReader interface {
	List(ctx context.Context) ([]models.ProductDB, error)                        // All products, newest first
	GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) // Single product, nil if absent
}

// ProductWriter defines write operations over the product store.
type ProductWriter interface {
	Save(ctx context.Context, name string, price float64, description string) (*models.ProductDB, error)
	Update(ctx context.Context, productID uuid.UUID, name string, price float64, description string) (*models.ProductDB, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ProductService handles product CRUD and Kafka event publishing.
type ProductService struct {
	readRepo    ProductReader
	writeRepo   ProductWriter
	kafkaWriter KafkaWriter
}

// NewProductService creates a new ProductService.
func NewProductService(readRepo ProductReader, writeRepo ProductWriter, kafkaWriter KafkaWriter) *ProductService {
	return &ProductService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a product change event to Kafka.
// Publishing failures are logged, never surfaced to the caller.
func (s *ProductService) publishEvent(ctx context.Context, action string, productID uuid.UUID, name string, price float64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action, "product_id", productID)
		return
	}

	event := models.ProductEvent{
		EventID:   uuid.NewString(),
		ProductID: productID.String(),
		Action:    action,
		Name:      name,
		Price:     price,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal product event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ProductID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish product event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("product event published", "event_id", event.EventID, "action", action, "product_id", productID)
	}
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	products, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

// Create inserts a new product and returns the created record.
func (s *ProductService) Create(ctx context.Context, name string, price float64, description string) (*models.ProductDB, error) {
	product, err := s.writeRepo.Save(ctx, name, price, description)
	if err != nil {
		logger.Log.Errorw("failed to create product", "name", name, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.ProductCreated, product.ProductID, product.Name, product.Price)
	return product, nil
}

// Update replaces the fields of an existing product and returns the updated
// record. Returns ErrProductNotFound when the id does not exist.
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, name string, price float64, description string) (*models.ProductDB, error) {
	existing, err := s.readRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "product_id", productID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	product, err := s.writeRepo.Update(ctx, productID, name, price, description)
	if err != nil {
		logger.Log.Errorw("failed to update product", "product_id", productID, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.publishEvent(ctx, models.ProductUpdated, product.ProductID, product.Name, product.Price)
	return product, nil
}

// Delete removes an existing product.
// Returns ErrProductNotFound when the id does not exist.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := s.writeRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		logger.Log.Errorw("failed to delete product", "product_id", productID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.ProductDeleted, productID, "", 0)
	return nil
}
