package receipt

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator generates unique IDs for receipts
type IDGenerator interface {
	Generate() string
}

// defaultIDGenerator generates random uuid v4 IDs
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return uuid.NewString()
}

// Service handles receipt scoring and retrieval
type Service struct {
	store       Store
	idGenerator IDGenerator
}

// NewService creates a new Service with the default ID generator
func NewService(store Store) *Service {
	return &Service{
		store:       store,
		idGenerator: &defaultIDGenerator{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(store Store, idGen IDGenerator) *Service {
	return &Service{
		store:       store,
		idGenerator: idGen,
	}
}

// ProcessReceipt scores a validated receipt, stores the result under a
// fresh ID, and returns the ID. The ID is returned only after the points
// are present in the store.
func (s *Service) ProcessReceipt(r Receipt) (string, error) {
	id := s.idGenerator.Generate()
	points := Points(r)

	if err := s.store.Put(id, points); err != nil {
		return "", fmt.Errorf("storing points: %w", err)
	}

	return id, nil
}

// GetPoints retrieves the points awarded to a previously processed receipt
func (s *Service) GetPoints(id string) (int, error) {
	points, err := s.store.Get(id)
	if err != nil {
		return 0, fmt.Errorf("getting points: %w", err)
	}
	return points, nil
}
