package errorx

import (
	"context"
	"errors"
	"net/http"
)

// CodeError 携带 HTTP 状态码的业务错误
type CodeError struct {
	Code int
	Msg  string
}

// CodeErrorResponse 错误响应体
type CodeErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

func (e *CodeError) Data() *CodeErrorResponse {
	return &CodeErrorResponse{Code: e.Code, Msg: e.Msg}
}

func New(code int, msg string) error {
	return &CodeError{Code: code, Msg: msg}
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func BadRequest(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// Handler 供 httpx.SetErrorHandlerCtx 使用
// 非 CodeError 一律按 500 返回
func Handler(_ context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, ce.Data()
	}
	return http.StatusInternalServerError, &CodeErrorResponse{Code: http.StatusInternalServerError, Msg: "internal error"}
}
