package impl

import (
	"context"
	"testing"
	"time"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	mockRepo "gatedesk/internal/mocks/repository"
	mockSvc "gatedesk/internal/mocks/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userServiceForTest(factory *mockRepo.MockRepositoryFactory, userRepo repository.UserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService, mailer *mockSvc.MockMailer) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    &mockRepo.MockTransactionManager{Factory: factory},
		UserRepo:     userRepo,
		TokenRepo:    factory.TokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       testLogger(),
	})
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		FullName: "Rita Vale",
		Email:    "rita@example.com",
		Password: "secret-password",
		Phone:    "+1-555-0100",
		IDNumber: "ID-1001",
		City:     "Springfield",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockEmailTokenRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	mailer := new(mockSvc.MockMailer)

	var storedToken *entity.EmailConfirmationToken
	var mailedToken string

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "rita@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByPhone", mock.Anything, "+1-555-0100").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByIDNumber", mock.Anything, "ID-1001").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.EmailConfirmationToken")).
		Run(func(args mock.Arguments) {
			storedToken = args.Get(1).(*entity.EmailConfirmationToken)
		}).
		Return(nil)
	mailer.On("SendConfirmationEmail", mock.Anything, "Rita Vale", "rita@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			mailedToken = args.Get(3).(string)
		}).
		Return(nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: tokenRepo}
	svc := userServiceForTest(factory, userRepo, hasher, nil, mailer)

	out, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.False(t, out.User.EmailConfirmed)

	require.NotNil(t, storedToken)
	assert.Equal(t, out.User.ID, storedToken.UserID)
	assert.Len(t, storedToken.Token, 6)
	assert.Equal(t, storedToken.Token, mailedToken)
	assert.WithinDuration(t, time.Now().Add(confirmationTokenTTL), storedToken.ExpiresAt, 5*time.Second)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	mailer := new(mockSvc.MockMailer)

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "rita@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: new(mockRepo.MockEmailTokenRepository)}
	svc := userServiceForTest(factory, userRepo, hasher, nil, mailer)

	_, err := svc.Register(context.Background(), registerInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendConfirmationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_MailFailureDoesNotFail(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockEmailTokenRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	mailer := new(mockSvc.MockMailer)

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByPhone", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByIDNumber", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendConfirmationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: tokenRepo}
	svc := userServiceForTest(factory, userRepo, hasher, nil, mailer)

	out, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.NotNil(t, out.User)
}

func TestUserService_ConfirmEmail_Success(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "rita@example.com"}
	confirmation := &entity.EmailConfirmationToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     "123456",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockEmailTokenRepository)

	tokenRepo.On("FindByToken", mock.Anything, "123456").Return(confirmation, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == user.ID && u.EmailConfirmed
	})).Return(nil)
	tokenRepo.On("Delete", mock.Anything, confirmation.ID).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: tokenRepo}
	svc := userServiceForTest(factory, userRepo, nil, nil, nil)

	err := svc.ConfirmEmail(context.Background(), "123456")
	require.NoError(t, err)
	tokenRepo.AssertCalled(t, "Delete", mock.Anything, confirmation.ID)
}

func TestUserService_ConfirmEmail_Expired(t *testing.T) {
	confirmation := &entity.EmailConfirmationToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockEmailTokenRepository)
	tokenRepo.On("FindByToken", mock.Anything, "123456").Return(confirmation, nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: tokenRepo}
	svc := userServiceForTest(factory, userRepo, nil, nil, nil)

	err := svc.ConfirmEmail(context.Background(), "123456")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationTokenExpired)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_ConfirmEmail_UnknownToken(t *testing.T) {
	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockEmailTokenRepository)
	tokenRepo.On("FindByToken", mock.Anything, "999999").Return(nil, repository.ErrTokenNotFound)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, TokenRepo: tokenRepo}
	svc := userServiceForTest(factory, userRepo, nil, nil, nil)

	err := svc.ConfirmEmail(context.Background(), "999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfirmationToken)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "rita@example.com",
		PasswordHash:   "hashed",
		Role:           entity.RoleUser,
		EmailConfirmed: true,
		Status:         entity.StatusActive,
	}

	tests := []struct {
		name    string
		setup   func(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService)
		wantErr error
	}{
		{
			name: "success",
			setup: func(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
				hasher.On("Check", "secret-password", "hashed").Return(true)
				tokenService.On("GenerateToken", user.ID, "user").Return("jwt-token", nil)
			},
		},
		{
			name: "unknown email",
			setup: func(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, user.Email).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
				hasher.On("Check", "secret-password", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unconfirmed email",
			setup: func(userRepo *mockRepo.MockUserRepository, hasher *mockSvc.MockPasswordHasher, tokenService *mockSvc.MockTokenService) {
				unconfirmed := *user
				unconfirmed.EmailConfirmed = false
				userRepo.On("FindByEmail", mock.Anything, user.Email).Return(&unconfirmed, nil)
				hasher.On("Check", "secret-password", "hashed").Return(true)
			},
			wantErr: domainerrors.ErrEmailNotConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockRepo.MockUserRepository)
			hasher := new(mockSvc.MockPasswordHasher)
			tokenService := new(mockSvc.MockTokenService)
			tt.setup(userRepo, hasher, tokenService)

			factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo}
			svc := userServiceForTest(factory, userRepo, hasher, tokenService, nil)

			out, err := svc.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "secret-password"})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "jwt-token", out.AccessToken)
			assert.Equal(t, user.ID, out.User.ID)
		})
	}
}

func TestUserService_SetUserStatus_NoOpGuard(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Status: entity.StatusActive}

	userRepo := new(mockRepo.MockUserRepository)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo}
	svc := userServiceForTest(factory, userRepo, nil, nil, nil)

	_, err := svc.SetUserStatus(context.Background(), user.ID, entity.StatusActive)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyActive)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	id := uuid.New()

	userRepo := new(mockRepo.MockUserRepository)
	userRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo}
	svc := userServiceForTest(factory, userRepo, nil, nil, nil)

	_, err := svc.GetUser(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
