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

// emailTokenRepository implements the repository.EmailTokenRepository interface.
type emailTokenRepository struct {
	db *gorm.DB
}

// NewEmailTokenRepository is the constructor for emailTokenRepository.
func NewEmailTokenRepository(db *gorm.DB) repository.EmailTokenRepository {
	return &emailTokenRepository{
		db: db,
	}
}

// Create persists a freshly issued confirmation token.
func (repo *emailTokenRepository) Create(ctx context.Context, token *entity.EmailConfirmationToken) error {
	tokenM := &model.EmailConfirmationTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create confirmation token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a token by its code.
func (repo *emailTokenRepository) FindByToken(ctx context.Context, token string) (*entity.EmailConfirmationToken, error) {
	var tokenM model.EmailConfirmationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find confirmation token")
	}

	return &entity.EmailConfirmationToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		Token:     tokenM.Token,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// Delete removes a redeemed or expired token.
func (repo *emailTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmailConfirmationTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete confirmation token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}
