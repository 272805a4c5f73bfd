package main

import (
	"context"
	"log/slog"
	"os"

	"gatedesk/config"
	"gatedesk/internal/delivery"
	"gatedesk/internal/delivery/http"
	"gatedesk/internal/delivery/http/middleware"
	"gatedesk/internal/delivery/http/router/handler"
	"gatedesk/internal/domain/service"
	"gatedesk/internal/i18n"
	"gatedesk/internal/infra/auth"
	logs "gatedesk/internal/infra/log"
	"gatedesk/internal/infra/mail"
	"gatedesk/internal/infra/persistence/postgres"
	"gatedesk/internal/infra/pubsub"
	"gatedesk/internal/infra/qrcode"
	"gatedesk/internal/infra/storage"
	"gatedesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		i18n.NewCatalog,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEmailTokenRepository,
			postgres.NewPlanRepository,
			postgres.NewActivePlanRepository,
			postgres.NewCreditLedgerRepository,
			postgres.NewBuildingRepository,
			postgres.NewAssignmentRepository,
			postgres.NewVisitorRepository,
			postgres.NewVisitRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newQRCodeService,
			newMailer,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newMailer creates the SendGrid mailer from configuration
func newMailer(cfg *config.Config) (service.Mailer, error) {
	return mail.NewSendGridMailer(cfg.Mail)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewPlanService,
			impl.NewActivePlanService,
			impl.NewEntitlementService,
			impl.NewLedgerService,
			impl.NewBuildingService,
			impl.NewDoormanService,
			impl.NewAssignmentService,
			impl.NewVisitorService,
			impl.NewVisitService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewPlanHandler,
			handler.NewActivePlanHandler,
			handler.NewEntitlementHandler,
			handler.NewLedgerHandler,
			handler.NewBuildingHandler,
			handler.NewDoormanHandler,
			handler.NewAssignmentHandler,
			handler.NewVisitorHandler,
			handler.NewVisitHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
