package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatedesk/config"
	"gatedesk/internal/domain/entity"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/domain/service"
	mockRepo "gatedesk/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLedgerHandler(t *testing.T, repo repository.CreditLedgerRepository) *LedgerHandler {
	t.Helper()

	return NewLedgerHandler(LedgerHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		LedgerRepo: repo,
	})
}

func pushRequest(t *testing.T, event *service.LedgerEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/local/subscriptions/ledger-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = event.TransactionID

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLedgerHandler_HandlePush_AcksReconciledEvent(t *testing.T) {
	row := &entity.CreditTransaction{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Type:       entity.CreditTypeBuilding,
		Action:     entity.CreditActionAdd,
		OccurredAt: time.Now(),
	}

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	h := newTestLedgerHandler(t, repo)
	c, rec := pushRequest(t, &service.LedgerEvent{
		Event:         service.LedgerEventConsumed,
		TransactionID: row.ID.String(),
		UserID:        row.UserID.String(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestLedgerHandler_HandlePush_AcksMissingRow(t *testing.T) {
	txID := uuid.New()

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, txID).
		Return(nil, repository.ErrCreditTransactionNotFound)

	h := newTestLedgerHandler(t, repo)
	c, rec := pushRequest(t, &service.LedgerEvent{
		Event:         service.LedgerEventDeleted,
		TransactionID: txID.String(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLedgerHandler_HandlePush_RetriesOnRepositoryFailure(t *testing.T) {
	txID := uuid.New()

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, txID).
		Return(nil, assert.AnError)

	h := newTestLedgerHandler(t, repo)
	c, rec := pushRequest(t, &service.LedgerEvent{
		Event:         service.LedgerEventConsumed,
		TransactionID: txID.String(),
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLedgerHandler_HandlePush_DropsMalformedPayload(t *testing.T) {
	repo := new(mockRepo.MockCreditLedgerRepository)
	h := newTestLedgerHandler(t, repo)

	msg := PubSubMessage{}
	msg.Message.Data = "not-base64!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "FindByID")
}
