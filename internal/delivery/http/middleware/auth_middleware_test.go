package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/service"
	mockSvc "gatedesk/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func nextProbe(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.MockTokenService))

	var called bool
	err := m.Authenticate(nextProbe(&called))(authTestContext(""))

	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.MockTokenService))

	var called bool
	err := m.Authenticate(nextProbe(&called))(authTestContext("Basic dXNlcg=="))

	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ValidateToken", "bad-token").Return(nil, assert.AnError)

	m := NewAuthMiddleware(tokenSvc)

	var called bool
	err := m.Authenticate(nextProbe(&called))(authTestContext("Bearer bad-token"))

	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_SetsClaims(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser.String()}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := authTestContext("Bearer good-token")

	var called bool
	require.NoError(t, m.Authenticate(nextProbe(&called))(c))
	assert.True(t, called)

	gotID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, entity.RoleUser.String(), c.Get(ContextKeyRole))
}

func TestAuthMiddleware_RequireRole_Denied(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.MockTokenService))
	c := authTestContext("")
	c.Set(ContextKeyRole, entity.RoleUser.String())

	var called bool
	err := m.RequireRole(entity.RoleAdmin.String())(nextProbe(&called))(c)

	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "NOT_AUTHORIZED", appErr.ErrorCode())
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.MockTokenService))
	c := authTestContext("")
	c.Set(ContextKeyRole, entity.RoleAdmin.String())

	var called bool
	require.NoError(t, m.RequireRole(entity.RoleAdmin.String())(nextProbe(&called))(c))
	assert.True(t, called)
}
