package handler

import (
	"Photoshare/internal/pkg/minio"
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoSvc service.PhotoService
}

func NewPhotoHandler(photoSvc service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoSvc: photoSvc,
	}
}

// GetPhotosOfUser GET /photosOfUser/:id
func (s *PhotoHandler) GetPhotosOfUser(c *gin.Context) {
	photos, err := s.photoSvc.PhotosOfUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err, "Server error fetching photos")
		return
	}
	response.JSON(c, photos)
}

// GetImage GET /images/:file_name
// 照片文件存在 MinIO，重定向到对象的公共地址
func (s *PhotoHandler) GetImage(c *gin.Context) {
	fileName := c.Param("file_name")

	if err := minio.StatImage(c.Request.Context(), fileName); err != nil {
		response.Fail(c, http.StatusNotFound, "Image not found")
		return
	}

	c.Redirect(http.StatusFound, minio.GetPublicURL(fileName))
}
