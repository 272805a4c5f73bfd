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

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// FindByID retrieves a plan by its unique ID.
func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	return toPlanDomain(&planM), nil
}

// List retrieves all plans, optionally restricted to a status.
func (repo *planRepository) List(ctx context.Context, status *entity.Status) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	query := repo.db.WithContext(ctx).Order("price ASC")
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	if err := query.Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// Create persists a new plan.
func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// Update modifies an existing plan.
func (repo *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", plan.ID).
		Select("name", "building_credit", "user_credit", "monthly_visits", "price", "status").
		Updates(fromPlanDomain(plan))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Delete removes a plan permanently.
func (repo *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlanModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

func toPlanDomain(data *model.PlanModel) *entity.Plan {
	return &entity.Plan{
		ID:             data.ID,
		Name:           data.Name,
		BuildingCredit: data.BuildingCredit,
		UserCredit:     data.UserCredit,
		MonthlyVisits:  data.MonthlyVisits,
		Price:          data.Price,
		Status:         entity.Status(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPlanDomain(data *entity.Plan) *model.PlanModel {
	return &model.PlanModel{
		ID:             data.ID,
		Name:           data.Name,
		BuildingCredit: data.BuildingCredit,
		UserCredit:     data.UserCredit,
		MonthlyVisits:  data.MonthlyVisits,
		Price:          data.Price,
		Status:         data.Status.String(),
	}
}
