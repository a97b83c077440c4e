package clients

import "fmt"

// CustomError represents different types of analysis client errors
type CustomError struct {
	Type    ErrorType
	Message string
}

type ErrorType int

const (
	ErrorTypeGeneral ErrorType = iota
	ErrorTypeUnavailable
	ErrorTypeTimeout
	ErrorTypeBadResponse
)

func (e *CustomError) Error() string {
	return e.Message
}

// IsTimeoutError checks if the error is caused by a request timeout
func IsTimeoutError(err error) bool {
	if customErr, ok := err.(*CustomError); ok {
		return customErr.Type == ErrorTypeTimeout
	}
	return false
}

// NewUnavailableError creates a new service unavailable error
func NewUnavailableError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeUnavailable,
		Message: fmt.Sprintf("分析サービスに接続できません: %s", message),
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("分析サービスの応答がタイムアウトしました: %s", message),
	}
}

// NewBadResponseError creates a new malformed response error
func NewBadResponseError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeBadResponse,
		Message: fmt.Sprintf("分析サービスの応答を解析できません: %s", message),
	}
}

// NewGeneralError creates a new general error
func NewGeneralError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeGeneral,
		Message: message,
	}
}
