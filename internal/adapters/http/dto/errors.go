// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation errors and the
	// upstream status for quote fetch failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeBadRequest       = "BAD_REQUEST"
	ErrorCodeUnauthorized     = "UNAUTHORIZED"
	ErrorCodeForbidden        = "FORBIDDEN"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeInternal         = "INTERNAL_ERROR"
	ErrorCodeUpstreamOffline  = "UPSTREAM_OFFLINE"
	ErrorCodeUpstreamStatus   = "UPSTREAM_STATUS"
	ErrorCodeUpstreamData     = "UPSTREAM_INVALID_DATA"
	ErrorCodeUpstream         = "UPSTREAM_ERROR"
	ErrorCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrorCodeSaveFailed       = "SAVE_FAILED"
	ErrorCodeReminderDenied   = "REMINDER_NOT_AUTHORIZED"
	ErrorCodeReminderFailed   = "REMINDER_NOT_SCHEDULED"
)

const internalMessage = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID

	return e
}

// HTTPStatusFromCode maps the adapter-level error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden, ErrorCodeReminderDenied:
		return http.StatusForbidden
	case ErrorCodeUnavailable, ErrorCodeUpstreamOffline, ErrorCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeUpstreamStatus, ErrorCodeUpstreamData, ErrorCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps an error to an HTTP status and envelope. Quote fetch
// and persistence kinds are matched before the generic sentinels they
// unwrap to. Unknown errors get a generic 500.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	if fe, ok := domain.IsFetchError(err); ok {
		return mapFetchError(fe)
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		switch pe.Kind {
		case domain.PersistenceLoadingError:
			return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeStoreUnavailable, "journal store is unavailable")
		case domain.PersistenceSaveError:
			return http.StatusInternalServerError, NewErrorResponse(ErrorCodeSaveFailed, "saving the journal failed")
		case domain.PersistenceNone:
		}
	}

	switch {
	case errors.Is(err, domain.ErrAuthorizationDenied):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeReminderDenied, "notifications are not authorized")

	case errors.Is(err, domain.ErrFailedToSetReminder):
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeReminderFailed, "the reminder could not be scheduled")

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			resp.Error.Details = map[string]string{ve.Field: ve.Message}
		}

		return http.StatusBadRequest, resp

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalMessage)
	}
}

func mapFetchError(fe *domain.FetchError) (int, *ErrorResponse) {
	switch fe.Kind {
	case domain.FetchTransportOffline:
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUpstreamOffline, "the quote service could not be reached")
	case domain.FetchInvalidStatusCode:
		return http.StatusBadGateway, NewErrorResponseWithDetails(ErrorCodeUpstreamStatus,
			"the quote service answered with an unexpected status",
			map[string]string{"status_code": strconv.Itoa(fe.StatusCode)})
	case domain.FetchInvalidData:
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstreamData, "the quote service returned unreadable data")
	case domain.FetchInvalidURL:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalMessage)
	default:
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstream, fe.Error())
	}
}

// GetTraceID returns the active span's trace ID, or "" when there is none.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}

// HandleError maps err and writes the envelope. 5xx responses are logged
// with the underlying error.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Any("error", err),
			slog.Int("status", status),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithCode aborts the chain with an adapter-level error code.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response with field-level errors.
func RespondWithValidationErrors(c *gin.Context, err error) {
	fields := ValidationErrors(err)
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, "malformed request body").WithTraceID(GetTraceID(c)))

		return
	}

	c.JSON(http.StatusBadRequest,
		NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", fields).WithTraceID(GetTraceID(c)))
}
