//go:build wireinject
// +build wireinject

package di

import (
	"dsatrack/internal"
	"dsatrack/internal/controllers"
	"dsatrack/internal/models"
	"dsatrack/internal/persistence"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"dsatrack/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewClockProvider,

		models.NewDocumentStore,
		wire.Bind(new(controllers.DocumentCounter), new(*models.DocumentStore)),

		persistence.NewZstdCompressor,
		persistence.NewFileManager,
		services.NewRevisionSweeper,
		persistence.NewScheduler,

		services.NewUserService,
		services.NewProblemService,
		services.NewListService,
		services.NewAnalyticsService,

		controllers.NewAnalyticsController,
		controllers.NewProblemController,
		controllers.NewListController,
		controllers.NewUserController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
