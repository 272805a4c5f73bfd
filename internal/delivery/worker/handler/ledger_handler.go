// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gatedesk/config"
	deliverycontext "gatedesk/internal/delivery/context"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// LedgerHandler consumes ledger event pushes and reconciles them against the
// credit ledger. Billing consumers are downstream; this worker only checks
// that every published mutation refers to a persisted row.
type LedgerHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	ledgerRepo     repository.CreditLedgerRepository
}

// LedgerHandlerParams holds dependencies for the LedgerHandler
type LedgerHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LedgerRepo repository.CreditLedgerRepository
}

// NewLedgerHandler creates a new Pub/Sub push handler for ledger events
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	// Google-signed pushes carry an OIDC token; local development does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == "google" &&
		params.Config.Env.Env != "develop"

	return &LedgerHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		ledgerRepo:     params.LedgerRepo,
	}
}

// HandlePush processes a single Pub/Sub push delivery. Returning a non-2xx
// status makes Pub/Sub redeliver the message, so only transient failures map
// to errors; malformed messages are acknowledged and dropped.
func (h *LedgerHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyAuth(c); err != nil {
			logger.Warn("Rejected unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		logger.Warn("Dropping malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		logger.Warn("Dropping push with undecodable payload",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	var event service.LedgerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("Dropping push with invalid ledger event",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.reconcile(c, &event); err != nil {
		if isRetryableError(err) {
			logger.Error("Transient failure processing ledger event",
				slog.String("transaction_id", event.TransactionID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusInternalServerError)
		}

		logger.Warn("Dropping unprocessable ledger event",
			slog.String("transaction_id", event.TransactionID),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

// reconcile checks the event against the persisted ledger row.
func (h *LedgerHandler) reconcile(c echo.Context, event *service.LedgerEvent) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	txID, err := uuid.Parse(event.TransactionID)
	if err != nil {
		return errors.Wrap(err, "invalid transaction id")
	}

	row, err := h.ledgerRepo.FindByID(ctx, txID)
	if err != nil {
		if errors.Is(err, repository.ErrCreditTransactionNotFound) {
			// The row vanished after publish; surface for investigation but
			// do not redeliver, the row will not reappear.
			logger.Warn("Ledger event refers to missing transaction",
				slog.String("transaction_id", event.TransactionID),
				slog.String("event", event.Event),
			)

			return nil
		}

		return newRetryableError(errors.Wrap(err, "failed to load ledger row"))
	}

	deletedMatches := (event.Event == service.LedgerEventDeleted) == row.Deleted
	if !deletedMatches {
		logger.Warn("Ledger event out of sync with stored row",
			slog.String("transaction_id", event.TransactionID),
			slog.String("event", event.Event),
			slog.Bool("row_deleted", row.Deleted),
		)

		return nil
	}

	logger.Info("Ledger event reconciled",
		slog.String("transaction_id", event.TransactionID),
		slog.String("event", event.Event),
		slog.String("type", event.Type),
		slog.String("action", event.Action),
	)

	return nil
}

// verifyAuth validates the OIDC bearer token Google attaches to pushes.
func (h *LedgerHandler) verifyAuth(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return errors.New("missing bearer token")
	}

	if _, err := idtoken.Validate(c.Request().Context(), token, ""); err != nil {
		return errors.Wrap(err, "invalid push token")
	}

	return nil
}
