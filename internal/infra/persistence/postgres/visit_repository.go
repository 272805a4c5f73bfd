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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// FindByID retrieves a visit by its unique ID.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return toVisitDomain(&visitM), nil
}

// List retrieves visits matching the filter, newest check-in first.
func (repo *visitRepository) List(ctx context.Context, filter repository.VisitFilter) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	query := repo.db.WithContext(ctx).Order("check_in_date DESC")
	if filter.BuildingID != nil {
		query = query.Where("building_id = ?", *filter.BuildingID)
	}
	if filter.VisitorID != nil {
		query = query.Where("visitor_id = ?", *filter.VisitorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.From != nil {
		query = query.Where("check_in_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("check_in_date <= ?", *filter.To)
	}

	if err := query.Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// Create persists a new visit. The composite unique index on building,
// visitor and check-in date surfaces as ErrVisitAlreadyExists.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVisitAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("visit references an unknown building or visitor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// Update modifies an existing visit.
func (repo *visitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ?", visit.ID).
		Select("purpose", "unit", "check_out_date", "status").
		Updates(fromVisitDomain(visit))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// Delete removes a visit row.
func (repo *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VisitModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete visit")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

func toVisitDomain(data *model.VisitModel) *entity.Visit {
	return &entity.Visit{
		ID:           data.ID,
		BuildingID:   data.BuildingID,
		UserID:       data.UserID,
		VisitorID:    data.VisitorID,
		Purpose:      data.Purpose,
		Unit:         data.Unit,
		CheckInDate:  data.CheckInDate,
		CheckOutDate: data.CheckOutDate,
		Status:       entity.VisitStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	return &model.VisitModel{
		ID:           data.ID,
		BuildingID:   data.BuildingID,
		UserID:       data.UserID,
		VisitorID:    data.VisitorID,
		Purpose:      data.Purpose,
		Unit:         data.Unit,
		CheckInDate:  data.CheckInDate,
		CheckOutDate: data.CheckOutDate,
		Status:       data.Status.String(),
	}
}
