package postgres

import (
	"context"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// Find retrieves the assignment for a building and doorman pair.
func (repo *assignmentRepository) Find(ctx context.Context, buildingID, userID uuid.UUID) (*entity.DoormanAssignment, error) {
	var assignmentM model.DoormanBuildingModel

	if err := repo.db.WithContext(ctx).
		Where("building_id = ? AND user_id = ?", buildingID, userID).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// ListByBuilding retrieves all assignments for a building.
func (repo *assignmentRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.DoormanAssignment, error) {
	return repo.list(ctx, "building_id = ?", buildingID)
}

// ListByDoorman retrieves all assignments held by a doorman.
func (repo *assignmentRepository) ListByDoorman(ctx context.Context, userID uuid.UUID) ([]*entity.DoormanAssignment, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

func (repo *assignmentRepository) list(ctx context.Context, query string, arg any) ([]*entity.DoormanAssignment, error) {
	var assignmentModels []*model.DoormanBuildingModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("assigned_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	assignments := make([]*entity.DoormanAssignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

// Create persists a new assignment.
func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.DoormanAssignment) error {
	assignmentM := &model.DoormanBuildingModel{
		ID:         assignment.ID,
		BuildingID: assignment.BuildingID,
		UserID:     assignment.UserID,
		Status:     assignment.Status.String(),
		AssignedAt: assignment.AssignedAt,
	}

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDoormanAlreadyAssigned.WrapMessage("assignment pair already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.ID = assignmentM.ID
	assignment.UpdatedAt = assignmentM.UpdatedAt

	return nil
}

// UpdateStatus flips the status of an existing assignment.
func (repo *assignmentRepository) UpdateStatus(ctx context.Context, buildingID, userID uuid.UUID, status entity.Status) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DoormanBuildingModel{}).
		Where("building_id = ? AND user_id = ?", buildingID, userID).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update assignment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

func toAssignmentDomain(data *model.DoormanBuildingModel) *entity.DoormanAssignment {
	return &entity.DoormanAssignment{
		ID:         data.ID,
		BuildingID: data.BuildingID,
		UserID:     data.UserID,
		Status:     entity.Status(data.Status),
		AssignedAt: data.AssignedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
