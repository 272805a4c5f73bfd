package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"gatedesk/internal/domain/entity"
	"gatedesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ledgerTestDB connects to the database named by GATEDESK_TEST_POSTGRES_DSN
// and ensures the credit_transactions table exists. The suite is skipped when
// the variable is unset so unit runs stay hermetic.
func ledgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("GATEDESK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("GATEDESK_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(pgDriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS credit_transactions (
		id uuid PRIMARY KEY,
		user_id uuid NOT NULL,
		building_id uuid,
		purpose varchar(255) NOT NULL,
		type varchar(20) NOT NULL,
		action varchar(20) NOT NULL,
		occurred_at timestamptz NOT NULL,
		deleted boolean NOT NULL DEFAULT false,
		deleted_at timestamptz
	)`).Error)

	return db
}

func appendLedgerRow(t *testing.T, repo repository.CreditLedgerRepository, userID uuid.UUID, purpose string) *entity.CreditTransaction {
	t.Helper()

	row := &entity.CreditTransaction{
		ID:         uuid.New(),
		UserID:     userID,
		Purpose:    purpose,
		Type:       entity.CreditTypeBuilding,
		Action:     entity.CreditActionAdd,
		OccurredAt: time.Now(),
	}
	require.NoError(t, repo.Append(context.Background(), row))

	return row
}

// The consumed count follows the soft-delete round trip: deleting a row
// frees its credit, appending consumes again, restoring re-consumes.
func TestCreditLedgerRepository_CountFollowsSoftDeleteRoundTrip(t *testing.T) {
	db := ledgerTestDB(t)
	repo := NewCreditLedgerRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM credit_transactions WHERE user_id = ?`, userID)
	})

	first := appendLedgerRow(t, repo, userID, "building registration: Annex")

	count, err := repo.CountConsumed(ctx, userID, entity.CreditTypeBuilding)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Releasing the credit removes the row from the count.
	deleted, err := repo.SoftDelete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	require.NotNil(t, deleted.DeletedAt)

	count, err = repo.CountConsumed(ctx, userID, entity.CreditTypeBuilding)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The freed credit can be consumed by a new row.
	appendLedgerRow(t, repo, userID, "building registration: Tower B")

	count, err = repo.CountConsumed(ctx, userID, entity.CreditTypeBuilding)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Restoring the first row re-consumes its credit.
	restored, err := repo.Restore(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.Nil(t, restored.DeletedAt)

	count, err = repo.CountConsumed(ctx, userID, entity.CreditTypeBuilding)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCreditLedgerRepository_ListExcludesDeletedByDefault(t *testing.T) {
	db := ledgerTestDB(t)
	repo := NewCreditLedgerRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM credit_transactions WHERE user_id = ?`, userID)
	})

	row := appendLedgerRow(t, repo, userID, "building registration: Annex")
	_, err := repo.SoftDelete(ctx, row.ID)
	require.NoError(t, err)

	rows, err := repo.List(ctx, repository.CreditLedgerFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.List(ctx, repository.CreditLedgerFilter{UserID: &userID, IncludeDeleted: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Deleted)
}

func TestCreditLedgerRepository_ToggleGuards(t *testing.T) {
	db := ledgerTestDB(t)
	repo := NewCreditLedgerRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM credit_transactions WHERE user_id = ?`, userID)
	})

	row := appendLedgerRow(t, repo, userID, "building registration: Annex")

	// Restoring a live row affects nothing.
	_, err := repo.Restore(ctx, row.ID)
	assert.ErrorIs(t, err, repository.ErrCreditTransactionNotFound)

	_, err = repo.SoftDelete(ctx, row.ID)
	require.NoError(t, err)

	// A second delete sees no live row.
	_, err = repo.SoftDelete(ctx, row.ID)
	assert.ErrorIs(t, err, repository.ErrCreditTransactionNotFound)
}
