package xerr

import (
	"errors"
	"fmt"
)

// CodeError 面向客户端的错误，Code 与 HTTP 状态码一致
type CodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Message: msg}
}

// As 从错误链中取出 CodeError
func As(err error) (*CodeError, bool) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

const (
	OK                  = 200
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrServerError      = New(InternalServerError, "Internal server error")
	ErrParam            = New(BadRequest, "Invalid request parameters")
	ErrInvalidIntensity = New(BadRequest, "roast_intensity must be one of: light, medium, savage")
	ErrRoastNotFound    = New(NotFound, "Roast not found")
	ErrRoastFailed      = New(InternalServerError, "Failed to generate roast. Please try again!")
)
