package nearrpc

import "fmt"

// Error represents a JSON-RPC 2.0 error object. Remote rejections (nonce
// conflicts, unknown accounts, insufficient balance) arrive in this shape
// and are passed through to the caller verbatim, never reinterpreted.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Standard JSON-RPC 2.0 error codes.
const (
	ParseErrorCode     = -32700
	InvalidRequestCode = -32600
	MethodNotFoundCode = -32601
	InvalidParamsCode  = -32602
	InternalErrorCode  = -32603
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message, data string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// Is implements the errors.Is interface, two errors match when their codes
// are equal.
func (e *Error) Is(target error) bool {
	clone, ok := target.(*Error)
	if !ok {
		return false
	}
	return clone.Code == e.Code
}
