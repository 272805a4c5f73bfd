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

// buildingRepository implements the repository.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{
		db: db,
	}
}

// FindByID retrieves a building by its unique ID.
func (repo *buildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	var buildingM model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by id")
	}

	return toBuildingDomain(&buildingM), nil
}

// ListByOwner retrieves all buildings owned by a user.
func (repo *buildingRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&buildingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buildings by owner")
	}

	return toBuildingDomainList(buildingModels), nil
}

// List retrieves all buildings.
func (repo *buildingRepository) List(ctx context.Context) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&buildingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	return toBuildingDomainList(buildingModels), nil
}

// Create persists a new building.
func (repo *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	buildingM := fromBuildingDomain(building)

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("building references an unknown owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create building")
	}

	building.ID = buildingM.ID
	building.CreatedAt = buildingM.CreatedAt
	building.UpdatedAt = buildingM.UpdatedAt

	return nil
}

// Update modifies an existing building. The QR columns are immutable after
// creation and excluded from the update set.
func (repo *buildingRepository) Update(ctx context.Context, building *entity.Building) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("id = ?", building.ID).
		Select("name", "address", "city", "latitude", "longitude", "type", "status").
		Updates(fromBuildingDomain(building))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update building")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	return nil
}

// Delete removes a building permanently.
func (repo *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BuildingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete building")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	return nil
}

func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	return &entity.Building{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Type:      entity.BuildingType(data.Type),
		Status:    entity.Status(data.Status),
		QR: entity.BuildingQR{
			UniqueIdentifier: data.QRUniqueIdentifier,
			ImageURL:         data.QRImageURL,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBuildingDomainList(data []*model.BuildingModel) []*entity.Building {
	buildings := make([]*entity.Building, 0, len(data))
	for _, buildingM := range data {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings
}

func fromBuildingDomain(data *entity.Building) *model.BuildingModel {
	return &model.BuildingModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Address:            data.Address,
		City:               data.City,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Type:               data.Type.String(),
		Status:             data.Status.String(),
		QRUniqueIdentifier: data.QR.UniqueIdentifier,
		QRImageURL:         data.QR.ImageURL,
	}
}
