package main

import (
	"context"
	"log/slog"
	"os"

	"dreamcrm/config"
	"dreamcrm/internal/delivery"
	"dreamcrm/internal/delivery/http"
	"dreamcrm/internal/delivery/http/middleware"
	"dreamcrm/internal/delivery/http/router/handler"
	"dreamcrm/internal/infra/auth"
	logs "dreamcrm/internal/infra/log"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/infra/persistence/sqlite"
	"dreamcrm/internal/usecase"
	"dreamcrm/internal/usecase/impl"

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
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		memory.NewSeededStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewPropertyRepository,
			memory.NewDealRepository,
			memory.NewLeadRepository,
			memory.NewDocumentRepository,
			memory.NewReminderRepository,
			memory.NewCallRepository,
			memory.NewEmailRepository,
			sqlite.NewStateStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewSettingsService,
			impl.NewPropertyService,
			impl.NewDealService,
			impl.NewLeadService,
			impl.NewAgentService,
			impl.NewUserService,
			impl.NewDocumentService,
			impl.NewCallService,
			impl.NewEmailService,
			impl.NewReminderService,
			impl.NewReportService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewNavHandler,
			handler.NewDashboardHandler,
			handler.NewReminderHandler,
			handler.NewPropertyHandler,
			handler.NewDealHandler,
			handler.NewLeadHandler,
			handler.NewAgentHandler,
			handler.NewCommissionHandler,
			handler.NewDocumentHandler,
			handler.NewCallHandler,
			handler.NewEmailHandler,
			handler.NewReportHandler,
			handler.NewUserHandler,
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

// restoreSession rehydrates the persisted session before the server
// starts taking requests. A corrupt record starts unauthenticated.
func restoreSession(ctx context.Context, sessions usecase.SessionUsecase) error {
	return sessions.Restore(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
