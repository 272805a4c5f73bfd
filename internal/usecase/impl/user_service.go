package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "gatedesk/internal/delivery/context"
	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/domain/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// confirmationTokenTTL is how long a mailed confirmation code stays valid.
const confirmationTokenTTL = time.Hour

type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.EmailTokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.EmailTokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with role user and mails a confirmation code.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	token, err := newConfirmationToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation token")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := checkUserUniqueness(ctx, userRepo, input.Email, input.Phone, input.IDNumber, uuid.Nil); err != nil {
			return err
		}

		newUser := &entity.User{
			ID:           uuid.New(),
			FullName:     input.FullName,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Phone:        input.Phone,
			IDNumber:     input.IDNumber,
			City:         input.City,
			Address:      input.Address,
			Role:         entity.RoleUser,
			Status:       entity.StatusActive,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		confirmation := &entity.EmailConfirmationToken{
			ID:        uuid.New(),
			UserID:    newUser.ID,
			Token:     token,
			ExpiresAt: time.Now().Add(confirmationTokenTTL),
		}

		if err := repoFactory.NewEmailTokenRepository().Create(ctx, confirmation); err != nil {
			return errors.Wrap(err, "failed to create confirmation token during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	// Mail delivery is best-effort; the token stays redeemable and support
	// can re-send it.
	if err := srv.mailer.SendConfirmationEmail(ctx, registeredUser.FullName, registeredUser.Email, token); err != nil {
		srv.log(ctx).Error("Failed to send confirmation email", slog.Any("userID", registeredUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// ConfirmEmail redeems a mailed confirmation code.
func (srv *userService) ConfirmEmail(ctx context.Context, token string) error {
	srv.log(ctx).Info("Confirming email")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewEmailTokenRepository()
		userRepo := repoFactory.NewUserRepository()

		confirmation, err := tokenRepo.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidConfirmationToken, "unknown confirmation token")
			}

			return errors.Wrap(err, "failed to find confirmation token")
		}

		if confirmation.Expired(time.Now()) {
			return errors.Wrap(domainerrors.ErrConfirmationTokenExpired, "confirmation token expired")
		}

		user, err := userRepo.FindByID(ctx, confirmation.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for confirmation token")
		}

		user.EmailConfirmed = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email confirmed")
		}

		if err := tokenRepo.Delete(ctx, confirmation.ID); err != nil {
			return errors.Wrap(err, "failed to delete redeemed confirmation token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Email confirmation failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email confirmation transaction")
	}

	return nil
}

// Login authenticates by email and password and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt comparison runs even though the user exists check already
	// passed; mismatch and unknown email report the same error.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.EmailConfirmed {
		srv.log(ctx).Warn("Login rejected for unconfirmed email", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrEmailNotConfirmed, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken, User: user}, nil
}

// ListUsers returns all users, optionally filtered by role.
func (srv *userService) ListUsers(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	var users []*entity.User
	var err error

	if role != nil {
		users, err = srv.userRepo.ListByRole(ctx, *role)
	} else {
		users, err = srv.userRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns any user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// CreateUser creates an account directly, email pre-confirmed.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.AdminCreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Admin creating user", slog.String("email", input.Email), slog.Any("role", input.Role))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	var created *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := checkUserUniqueness(ctx, userRepo, input.Email, input.Phone, input.IDNumber, uuid.Nil); err != nil {
			return err
		}

		newUser := &entity.User{
			ID:             uuid.New(),
			FullName:       input.FullName,
			Email:          input.Email,
			PasswordHash:   hashedPassword,
			Phone:          input.Phone,
			IDNumber:       input.IDNumber,
			City:           input.City,
			Address:        input.Address,
			Role:           input.Role,
			Status:         entity.StatusActive,
			EmailConfirmed: true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		created = newUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute admin user creation transaction")
	}

	return created, nil
}

// UpdateUser applies partial edits to any user.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Email != nil && *input.Email != user.Email {
			if err := checkUserUniqueness(ctx, userRepo, *input.Email, "", "", user.ID); err != nil {
				return err
			}
			user.Email = *input.Email
		}
		if input.Phone != nil && *input.Phone != user.Phone {
			if err := checkUserUniqueness(ctx, userRepo, "", *input.Phone, "", user.ID); err != nil {
				return err
			}
			user.Phone = *input.Phone
		}
		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.City != nil {
			user.City = *input.City
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updated, nil
}

// DeleteUser removes a user permanently.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.GetUser(ctx, id); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// SetUserStatus toggles a user between active and inactive with the no-op guard.
func (srv *userService) SetUserStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if err := guardStatusTransition(user.Status, status); err != nil {
			return err
		}

		user.Status = status
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}
		updated = user

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user status transaction")
	}

	return updated, nil
}

// newConfirmationToken generates a random 6-digit code.
func newConfirmationToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
