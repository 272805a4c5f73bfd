package postgres

import (
	"context"
	"time"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// creditLedgerRepository implements the repository.CreditLedgerRepository interface.
type creditLedgerRepository struct {
	db *gorm.DB
}

// NewCreditLedgerRepository is the constructor for creditLedgerRepository.
func NewCreditLedgerRepository(db *gorm.DB) repository.CreditLedgerRepository {
	return &creditLedgerRepository{
		db: db,
	}
}

// FindByID retrieves a ledger row regardless of its deleted flag.
func (repo *creditLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	var rowM model.CreditTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rowM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCreditTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find credit transaction by id")
	}

	return toCreditTransactionDomain(&rowM), nil
}

// List retrieves ledger rows matching the filter, newest first.
func (repo *creditLedgerRepository) List(ctx context.Context, filter repository.CreditLedgerFilter) ([]*entity.CreditTransaction, error) {
	var rowModels []*model.CreditTransactionModel

	query := repo.db.WithContext(ctx).Order("occurred_at DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if !filter.IncludeDeleted {
		query = query.Where("deleted = false")
	}

	if err := query.Find(&rowModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credit transactions")
	}

	rows := make([]*entity.CreditTransaction, 0, len(rowModels))
	for _, rowM := range rowModels {
		rows = append(rows, toCreditTransactionDomain(rowM))
	}

	return rows, nil
}

// Append persists a new ledger row.
func (repo *creditLedgerRepository) Append(ctx context.Context, tx *entity.CreditTransaction) error {
	rowM := &model.CreditTransactionModel{
		ID:         tx.ID,
		UserID:     tx.UserID,
		BuildingID: tx.BuildingID,
		Purpose:    tx.Purpose,
		Type:       tx.Type.String(),
		Action:     tx.Action.String(),
		OccurredAt: tx.OccurredAt,
		Deleted:    tx.Deleted,
	}

	if err := repo.db.WithContext(ctx).Create(rowM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append credit transaction")
	}

	tx.ID = rowM.ID

	return nil
}

// SoftDelete marks a live row as deleted. The status predicate makes the
// write idempotent under concurrency: only one of two racing deletes sees an
// affected row.
func (repo *creditLedgerRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CreditTransactionModel{}).
		Where("id = ? AND deleted = false", id).
		Updates(map[string]any{"deleted": true, "deleted_at": now})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to soft delete credit transaction")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCreditTransactionNotFound
	}

	return repo.FindByID(ctx, id)
}

// Restore clears the deleted flag on a soft-deleted row.
func (repo *creditLedgerRepository) Restore(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CreditTransactionModel{}).
		Where("id = ? AND deleted = true", id).
		Updates(map[string]any{"deleted": false, "deleted_at": nil})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to restore credit transaction")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCreditTransactionNotFound
	}

	return repo.FindByID(ctx, id)
}

// CountConsumed counts live add rows for the user and credit type.
func (repo *creditLedgerRepository) CountConsumed(ctx context.Context, userID uuid.UUID, creditType entity.CreditType) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CreditTransactionModel{}).
		Where("user_id = ? AND type = ? AND action = ? AND deleted = false",
			userID, creditType.String(), entity.CreditActionAdd.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count consumed credits")
	}

	return count, nil
}

func toCreditTransactionDomain(data *model.CreditTransactionModel) *entity.CreditTransaction {
	return &entity.CreditTransaction{
		ID:         data.ID,
		UserID:     data.UserID,
		BuildingID: data.BuildingID,
		Purpose:    data.Purpose,
		Type:       entity.CreditType(data.Type),
		Action:     entity.CreditAction(data.Action),
		OccurredAt: data.OccurredAt,
		Deleted:    data.Deleted,
		DeletedAt:  data.DeletedAt,
	}
}
