package api

import "Photoshare/internal/api/handler"

// HandlersGroup 路由挂载所需的全部 Handler
type HandlersGroup struct {
	UserHandler  *handler.UserHandler
	PhotoHandler *handler.PhotoHandler
	TestHandler  *handler.TestHandler
}
