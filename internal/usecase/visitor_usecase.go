package usecase

import (
	"context"
	"time"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitorInput defines the data for creating or editing a visitor record.
type VisitorInput struct {
	FullName   string
	IDNumber   string
	Birthday   time.Time
	Gender     entity.Gender
	Region     string
	ExpireDate time.Time
	Phone      string
}

// VisitorUsecase defines operations over the visitor registry. Visitors
// exist independently of any one visit and are keyed by ID number.
type VisitorUsecase interface {
	Create(ctx context.Context, input *VisitorInput) (*entity.Visitor, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)
	List(ctx context.Context) ([]*entity.Visitor, error)
	Update(ctx context.Context, id uuid.UUID, input *VisitorInput) (*entity.Visitor, error)

	// Delete removes a visitor record entirely. Past visits keep their
	// visitor reference; only the registry entry goes away.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetStatus toggles a visitor between active and inactive with the
	// uniform no-op guard.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Visitor, error)
}
