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

// visitorRepository implements the repository.VisitorRepository interface.
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository is the constructor for visitorRepository.
func NewVisitorRepository(db *gorm.DB) repository.VisitorRepository {
	return &visitorRepository{
		db: db,
	}
}

// FindByID retrieves a visitor by its unique ID.
func (repo *visitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByIDNumber retrieves a visitor by national identity number.
func (repo *visitorRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.Visitor, error) {
	return repo.findOne(ctx, "id_number = ?", idNumber)
}

func (repo *visitorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Visitor, error) {
	var visitorM model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&visitorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitorNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitor")
	}

	return toVisitorDomain(&visitorM), nil
}

// List retrieves all visitors.
func (repo *visitorRepository) List(ctx context.Context) ([]*entity.Visitor, error) {
	var visitorModels []*model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&visitorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visitors")
	}

	visitors := make([]*entity.Visitor, 0, len(visitorModels))
	for _, visitorM := range visitorModels {
		visitors = append(visitors, toVisitorDomain(visitorM))
	}

	return visitors, nil
}

// Create persists a new visitor.
func (repo *visitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	visitorM := fromVisitorDomain(visitor)

	if err := repo.db.WithContext(ctx).Create(visitorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIDNumberInUse.WrapMessage("visitor document number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visitor")
	}

	visitor.ID = visitorM.ID
	visitor.CreatedAt = visitorM.CreatedAt
	visitor.UpdatedAt = visitorM.UpdatedAt

	return nil
}

// Update modifies an existing visitor.
func (repo *visitorRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitorModel{}).
		Where("id = ?", visitor.ID).
		Select("full_name", "id_number", "birthday", "gender", "region",
			"expire_date", "phone", "status").
		Updates(fromVisitorDomain(visitor))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrIDNumberInUse.WrapMessage("visitor document number already registered")
		}

		return errors.Wrap(result.Error, "failed to update visitor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitorNotFound
	}

	return nil
}

// Delete removes a visitor row.
func (repo *visitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VisitorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete visitor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitorNotFound
	}

	return nil
}

func toVisitorDomain(data *model.VisitorModel) *entity.Visitor {
	return &entity.Visitor{
		ID:         data.ID,
		FullName:   data.FullName,
		IDNumber:   data.IDNumber,
		Birthday:   data.Birthday,
		Gender:     entity.Gender(data.Gender),
		Region:     data.Region,
		ExpireDate: data.ExpireDate,
		Phone:      data.Phone,
		Status:     entity.Status(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromVisitorDomain(data *entity.Visitor) *model.VisitorModel {
	return &model.VisitorModel{
		ID:         data.ID,
		FullName:   data.FullName,
		IDNumber:   data.IDNumber,
		Birthday:   data.Birthday,
		Gender:     string(data.Gender),
		Region:     data.Region,
		ExpireDate: data.ExpireDate,
		Phone:      data.Phone,
		Status:     data.Status.String(),
	}
}
