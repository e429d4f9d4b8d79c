package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrInvalidUserID     = errors.New("Invalid user ID format")
	ErrUserNotFound      = errors.New("User not found")
	ErrNoPhotosFound     = errors.New("No photos found for this user")
	ErrSchemaInfoMissing = errors.New("Missing SchemaInfo")
	UnExpectedError      = errors.New("Internal server error")
)

// ErrorMap 业务错误到 HTTP 状态码的映射。
// 注意：按照参考实现的约定，"用户不存在" 也返回 400 而不是 404。
var ErrorMap = map[error]int{
	ErrInvalidUserID:     BadRequest,
	ErrUserNotFound:      BadRequest,
	ErrNoPhotosFound:     BadRequest,
	ErrSchemaInfoMissing: InternalServerError,
	UnExpectedError:      InternalServerError,
}
