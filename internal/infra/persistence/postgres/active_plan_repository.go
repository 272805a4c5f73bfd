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
	"gorm.io/gorm/clause"
)

// activePlanRepository implements the repository.ActivePlanRepository interface.
type activePlanRepository struct {
	db *gorm.DB
}

// NewActivePlanRepository is the constructor for activePlanRepository.
func NewActivePlanRepository(db *gorm.DB) repository.ActivePlanRepository {
	return &activePlanRepository{
		db: db,
	}
}

// FindByID retrieves a grant by its unique ID with the catalog plan joined in.
func (repo *activePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivePlan, error) {
	var grantM model.ActivePlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Plan").
		Where("id = ?", id).
		First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivePlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan grant by id")
	}

	return toActivePlanDomain(&grantM), nil
}

// FindCurrentActive resolves the most recently issued active grant.
func (repo *activePlanRepository) FindCurrentActive(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error) {
	return repo.findCurrentActive(ctx, userID, false)
}

// FindCurrentActiveForUpdate resolves the same grant with a row lock held
// until the surrounding transaction commits.
func (repo *activePlanRepository) FindCurrentActiveForUpdate(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error) {
	return repo.findCurrentActive(ctx, userID, true)
}

func (repo *activePlanRepository) findCurrentActive(ctx context.Context, userID uuid.UUID, forUpdate bool) (*entity.ActivePlan, error) {
	var grantM model.ActivePlanModel

	query := repo.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND status = ?", userID, entity.ActivePlanActive.String()).
		Order("issued_at DESC")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: model.ActivePlanModel{}.TableName()}})
	}

	if err := query.First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivePlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find current active plan grant")
	}

	return toActivePlanDomain(&grantM), nil
}

// ListByUser retrieves all grants ever issued to a user, newest first.
func (repo *activePlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivePlan, error) {
	var grantModels []*model.ActivePlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&grantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plan grants by user")
	}

	grants := make([]*entity.ActivePlan, 0, len(grantModels))
	for _, grantM := range grantModels {
		grants = append(grants, toActivePlanDomain(grantM))
	}

	return grants, nil
}

// Create persists a new grant.
func (repo *activePlanRepository) Create(ctx context.Context, grant *entity.ActivePlan) error {
	grantM := &model.ActivePlanModel{
		ID:       grant.ID,
		UserID:   grant.UserID,
		PlanID:   grant.PlanID,
		Status:   grant.Status.String(),
		IssuedAt: grant.IssuedAt,
	}

	if err := repo.db.WithContext(ctx).Create(grantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan grant")
	}

	grant.ID = grantM.ID
	grant.CreatedAt = grantM.CreatedAt
	grant.UpdatedAt = grantM.UpdatedAt

	return nil
}

// UpdateStatus transitions a grant's lifecycle state.
func (repo *activePlanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ActivePlanStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivePlanModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plan grant status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivePlanNotFound
	}

	return nil
}

func toActivePlanDomain(data *model.ActivePlanModel) *entity.ActivePlan {
	grant := &entity.ActivePlan{
		ID:        data.ID,
		UserID:    data.UserID,
		PlanID:    data.PlanID,
		Status:    entity.ActivePlanStatus(data.Status),
		IssuedAt:  data.IssuedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Plan != nil {
		grant.Plan = toPlanDomain(data.Plan)
	}

	return grant
}
