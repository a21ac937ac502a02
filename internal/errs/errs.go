package errs

import (
	"errors"
	"net/http"
)

// 业务错误分类, 通过 New 附带面向用户的消息, 或 fmt.Errorf("...: %w", ErrXxx) 包装
var (
	ErrValidation         = errors.New("请求参数错误")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUnauthenticated    = errors.New("未认证")
	ErrNotFound           = errors.New("资源不存在")
	ErrConflict           = errors.New("资源冲突")
	ErrGenerationFailed   = errors.New("内容生成失败")
)

// Error 带用户消息的业务错误, errors.Is 可匹配到其分类
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// New 创建业务错误
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 创建带底层原因的业务错误
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap 同时暴露分类和底层原因
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// HTTPStatus 根据错误分类返回HTTP状态码, 未知错误返回500
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
