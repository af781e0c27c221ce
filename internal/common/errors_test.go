package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

func TestAppErrorClassification(t *testing.T) {
	cause := errors.New("upstream 502")
	tests := []struct {
		name   string
		err    error
		kind   error
		code   codes.Code
		status int
	}{
		{"validation", NewValidationError("bad", nil), ErrValidation, codes.InvalidArgument, http.StatusBadRequest},
		{"extraction", NewExtractionError("manual", cause), ErrExtraction, codes.FailedPrecondition, http.StatusUnprocessableEntity},
		{"provider", NewProviderError("down", cause), ErrProvider, codes.Unavailable, http.StatusServiceUnavailable},
		{"configuration", NewConfigurationError("cfg", ErrMissingPrimaryKey), ErrConfiguration, codes.Internal, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", NewProviderError("down", cause)), ErrProvider, codes.Unavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.code, GRPCCode(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorKeepsCauseChain(t *testing.T) {
	cause := errors.New("upstream 502")
	err := NewProviderError("down", fmt.Errorf("openai: %w", cause))
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "upstream 502")
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "", PublicMessage(nil))
	assert.Equal(t, "down", PublicMessage(NewProviderError("down", errors.New("secret"))))
	assert.Equal(t, constants.MsgInternal, PublicMessage(errors.New("secret")))
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, RequestIDFromContext(ctx))

	ctx2, id2 := EnsureRequestID(ctx)
	assert.Equal(t, id, id2)
	assert.Equal(t, ctx, ctx2)

	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(context.Background(), "abc")))
}

func TestValidator(t *testing.T) {
	v := NewValidator().
		Field("originalText", "", Required, MaxLength(3)).
		Field("jobTitle", "四五六七", MaxLength(3))
	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "originalText")
	assert.Contains(t, v.ErrorMessage(), "jobTitle")

	err := ValidateAndReturnError(v, "nope")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "nope", PublicMessage(err))

	ok := NewValidator().Field("x", "三个字", Required, MaxLength(3))
	assert.False(t, ok.HasErrors())
	assert.NoError(t, ok.Error())
	assert.NoError(t, ValidateAndReturnError(ok, "nope"))
}
