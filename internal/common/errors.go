package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// AppError represents application-specific errors. Kind is one of the
// sentinel errors below and drives classification; Message is safe to show
// to end users; Cause carries the underlying detail for logs.
type AppError struct {
	Code    string
	Message string
	Kind    error
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match on the error kind as well as the cause chain.
func (e *AppError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Error kinds
var (
	ErrConfiguration = errors.New("configuration error")
	ErrExtraction    = errors.New("extraction failed")
	ErrProvider      = errors.New("provider unavailable")
	ErrValidation    = errors.New("validation failed")

	ErrMissingPrimaryKey = errors.New("DEEPSEEK_API_KEY is required")
	ErrMissingHTTPAddr   = errors.New("PORT is required")
)

// Error codes
const (
	CodeConfiguration = "CONFIG_ERROR"
	CodeExtraction    = "EXTRACTION_ERROR"
	CodeProvider      = "PROVIDER_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
)

// NewConfigurationError is returned when a required credential or setting is absent.
func NewConfigurationError(message string, cause error) *AppError {
	return &AppError{Code: CodeConfiguration, Message: message, Kind: ErrConfiguration, Cause: cause}
}

// NewExtractionError is returned when every extraction strategy is exhausted.
func NewExtractionError(message string, cause error) *AppError {
	return &AppError{Code: CodeExtraction, Message: message, Kind: ErrExtraction, Cause: cause}
}

// NewProviderError is returned when both AI providers failed.
func NewProviderError(message string, cause error) *AppError {
	return &AppError{Code: CodeProvider, Message: message, Kind: ErrProvider, Cause: cause}
}

// NewValidationError is returned when caller input breaks a stated rule.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Kind: ErrValidation, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// PublicMessage returns the text an end user may see for err. Anything that
// is not an AppError collapses to a generic message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return constants.MsgInternal
}

// GRPCCode maps an error onto the canonical status code space.
func GRPCCode(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, ErrExtraction):
		return codes.FailedPrecondition
	case errors.Is(err, ErrProvider):
		return codes.Unavailable
	case errors.Is(err, ErrConfiguration):
		return codes.Internal
	default:
		return codes.Internal
	}
}

// HTTPStatus maps an error onto an HTTP status code via its gRPC code.
func HTTPStatus(err error) int {
	switch GRPCCode(err) {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.FailedPrecondition:
		return http.StatusUnprocessableEntity
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
