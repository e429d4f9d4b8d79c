package dto

// ErrorResponse 错误响应体，500 时附带底层错误详情
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
