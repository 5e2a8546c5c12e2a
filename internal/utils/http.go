package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// StatusSuccess marks a successful envelope
	StatusSuccess = "success"
	// StatusError marks a failed envelope
	StatusError = "error"
)

// Response is the envelope every JSON endpoint answers with.
// Data is always an object or value, never null; Error is null on success.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

// NewSuccess builds a success envelope
func NewSuccess(message string, data interface{}) Response {
	return Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    normalizeData(data),
	}
}

// NewFailure builds an error envelope; an empty detail serializes as null
func NewFailure(message, detail string, data interface{}) Response {
	resp := Response{
		Status:  StatusError,
		Message: message,
		Data:    normalizeData(data),
	}
	if detail != "" {
		resp.Error = &detail
	}
	return resp
}

func normalizeData(data interface{}) interface{} {
	switch v := data.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		if v == nil {
			return map[string]interface{}{}
		}
	}
	return data
}

// SuccessResponse sends a success envelope
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, NewSuccess(message, data))
}

// ErrorResponseHandler sends an error envelope
func ErrorResponseHandler(c echo.Context, statusCode int, message, detail string, data interface{}) error {
	return c.JSON(statusCode, NewFailure(message, detail, data))
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message, "", nil)
}

// NotFoundResponse sends a 404 Not Found envelope
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, message, "", nil)
}

// InternalServerErrorResponse sends a 500 Internal Server Error envelope
func InternalServerErrorResponse(c echo.Context, message, detail string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, message, detail, nil)
}

// TooManyRequestsResponse sends a 429 envelope
func TooManyRequestsResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, message, "", nil)
}
