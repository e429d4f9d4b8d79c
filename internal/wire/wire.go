package wire

import (
	"Photoshare/internal/api"
	"Photoshare/internal/api/config"
	"Photoshare/internal/api/handler"
	"Photoshare/internal/job"
	"Photoshare/internal/pkg/cron"
	"Photoshare/internal/repository"
	"Photoshare/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Mongo   *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	photoRepo := repository.NewPhotoRepo(db)
	schemaInfoRepo := repository.NewSchemaInfoRepo(db)

	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(photoRepo)
	photoService := service.NewPhotoService(photoRepo, userRepo)
	systemService := service.NewSystemService(schemaInfoRepo)

	handlers := &api.HandlersGroup{
		UserHandler:  handler.NewUserHandler(userService, statsService),
		PhotoHandler: handler.NewPhotoHandler(photoService),
		TestHandler:  handler.NewTestHandler(systemService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewCollectionCensusJob(schemaInfoRepo))

	return &ApplicationContainer{
		Router:  router,
		Mongo:   db,
		CronMgr: cronMgr,
	}, nil
}
