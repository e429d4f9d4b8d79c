package api

import (
	"Photoshare/internal/api/middleware"
	"Photoshare/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// 连通性检查
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Photoshare API server is up")
	})
	r.GET("/test/:p1", group.TestHandler.Test)

	userGroup := r.Group("/user")
	{
		userGroup.GET("/list", group.UserHandler.ListUsers)
		userGroup.GET("/:id", group.UserHandler.GetUser)
		userGroup.GET("/:id/stats", group.UserHandler.GetUserStats)
		userGroup.GET("/:id/photos", group.UserHandler.GetUserPhotos)
		userGroup.GET("/:id/comments", group.UserHandler.GetUserComments)
	}

	r.GET("/photosOfUser/:id", group.PhotoHandler.GetPhotosOfUser)
	r.GET("/images/:file_name", group.PhotoHandler.GetImage)

	return r
}
