package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVisitorNotFound is returned when a visitor does not exist.
var ErrVisitorNotFound = errors.New("visitor not found")

// VisitorRepository defines operations for the visitor registry.
type VisitorRepository interface {
	// FindByID retrieves a visitor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)

	// FindByIDNumber retrieves a visitor by national identity number.
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.Visitor, error)

	// List retrieves all visitors.
	List(ctx context.Context) ([]*entity.Visitor, error)

	// Create persists a new visitor.
	Create(ctx context.Context, visitor *entity.Visitor) error

	// Update modifies an existing visitor.
	Update(ctx context.Context, visitor *entity.Visitor) error

	// Delete removes a visitor. Returns ErrVisitorNotFound when no row
	// matches the ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
