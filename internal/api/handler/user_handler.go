package handler

import (
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	statsSvc service.StatsService
}

func NewUserHandler(userSvc service.UserService, statsSvc service.StatsService) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		statsSvc: statsSvc,
	}
}

// ListUsers GET /user/list
func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Error fetching user list")
		return
	}
	response.JSON(c, users)
}

// GetUser GET /user/:id
func (s *UserHandler) GetUser(c *gin.Context) {
	user, err := s.userSvc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, "Error fetching user")
		return
	}
	response.JSON(c, user)
}

// GetUserStats GET /user/:id/stats
func (s *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := s.statsSvc.ComputeStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, "Error fetching user stats")
		return
	}
	response.JSON(c, stats)
}

// GetUserPhotos GET /user/:id/photos
func (s *UserHandler) GetUserPhotos(c *gin.Context) {
	photos, err := s.statsSvc.ListUserPhotos(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, "Error fetching user photos")
		return
	}
	response.JSON(c, photos)
}

// GetUserComments GET /user/:id/comments
func (s *UserHandler) GetUserComments(c *gin.Context) {
	comments, err := s.statsSvc.ListUserComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, "Error fetching user comments")
		return
	}
	response.JSON(c, comments)
}
