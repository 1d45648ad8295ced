package storagefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideStorageService, provideStorageController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideStorageService(repo repositories.ItineraryRepository) services.StorageServiceInterface {
	return services.NewStorageService(repo)
}

func provideStorageController(storageService services.StorageServiceInterface) *controllers.StorageController {
	return controllers.NewStorageController(storageService)
}
