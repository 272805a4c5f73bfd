package impl

import (
	"context"
	"testing"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	mockRepo "gatedesk/internal/mocks/repository"
	mockSvc "gatedesk/internal/mocks/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileServiceForTest(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher) usecase.ProfileUsecase {
	return NewProfileService(ProfileServiceParams{
		TxManager: &mockRepo.MockTransactionManager{Factory: &mockRepo.MockRepositoryFactory{UserRepo: userRepo}},
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    testLogger(),
	})
}

func TestProfileService_UpdateProfile_EmailChangeResetsConfirmation(t *testing.T) {
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "old@example.com",
		EmailConfirmed: true,
	}

	userRepo := new(mockRepo.MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)

	var saved *entity.User
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.User)
		}).
		Return(nil)

	svc := profileServiceForTest(userRepo, nil)

	email := "new@example.com"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.False(t, updated.EmailConfirmed)
	require.NotNil(t, saved)
	assert.False(t, saved.EmailConfirmed)
}

func TestProfileService_UpdateProfile_SameEmailKeepsConfirmation(t *testing.T) {
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "old@example.com",
		EmailConfirmed: true,
	}

	userRepo := new(mockRepo.MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	svc := profileServiceForTest(userRepo, nil)

	email := "old@example.com"
	name := "New Name"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{Email: &email, FullName: &name})
	require.NoError(t, err)
	assert.True(t, updated.EmailConfirmed)
	assert.Equal(t, "New Name", updated.FullName)
}

func TestProfileService_ChangePassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	hasher.On("Check", "current", "old-hash").Return(true)
	hasher.On("Hash", "next").Return("new-hash", nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "new-hash"
	})).Return(nil)

	svc := profileServiceForTest(userRepo, hasher)

	err := svc.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "current",
		NewPassword:     "next",
	})
	require.NoError(t, err)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}

	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	hasher.On("Check", "wrong", "old-hash").Return(false)

	svc := profileServiceForTest(userRepo, hasher)

	err := svc.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "next",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
