// Package service provides hand-written test doubles for the domain service
// interfaces.
package service

import (
	"context"
	"time"

	"gatedesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if v := args.Get(0); v != nil {
		return v.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) GetTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockQRCodeService is a testify mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateBuildingQR() (*service.BuildingQRCode, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*service.BuildingQRCode), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockQRStorage is a testify mock for service.QRStorage.
type MockQRStorage struct {
	mock.Mock
}

func (m *MockQRStorage) SaveImage(ctx context.Context, key string, png []byte) (string, error) {
	args := m.Called(ctx, key, png)

	return args.String(0), args.Error(1)
}

// MockMailer is a testify mock for service.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendConfirmationEmail(ctx context.Context, toName, toEmail, token string) error {
	return m.Called(ctx, toName, toEmail, token).Error(0)
}

// MockEventPublisher is a testify mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLedgerEvent(ctx context.Context, event *service.LedgerEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
