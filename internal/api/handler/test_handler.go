package handler

import (
	"Photoshare/internal/pkg/response"
	"Photoshare/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	systemSvc service.SystemService
}

func NewTestHandler(systemSvc service.SystemService) *TestHandler {
	return &TestHandler{
		systemSvc: systemSvc,
	}
}

// Test GET /test/:p1 — info 返回 SchemaInfo，counts 返回各集合文档数
func (s *TestHandler) Test(c *gin.Context) {
	param := c.Param("p1")
	if param == "" {
		param = "info"
	}

	switch param {
	case "info":
		info, err := s.systemSvc.SchemaInfo(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Error fetching schema info")
			return
		}
		response.JSON(c, info)
	case "counts":
		counts, err := s.systemSvc.CollectionCounts(c.Request.Context())
		if err != nil {
			response.Error(c, err, "Error fetching collection counts")
			return
		}
		response.JSON(c, counts)
	default:
		response.Fail(c, http.StatusBadRequest, "Bad param "+param)
	}
}
