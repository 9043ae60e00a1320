package exceptions

import (
	"errors"
	"outcomes-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrRedisSet(cause)

	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, constvars.ErrDevRedisSetData+": connection refused", err.DevMessage)
	assert.ErrorIs(t, err, cause)

	require.Len(t, err.Locations, 1)
	assert.True(t, strings.HasSuffix(err.Locations[0].File, "error_test.go"), err.Locations[0].File)
}

func TestBuildNewCustomErrorKeepsTrail(t *testing.T) {
	inner := ErrAssessmentNotFound(nil, "run-1")
	outer := ErrServerDeadlineExceeded(inner)

	assert.Equal(t, constvars.StatusGatewayTimeout, outer.StatusCode)
	assert.Equal(t, inner.DevMessage, outer.DevMessage)
	assert.Len(t, outer.Locations, 2)

	var found *CustomError
	require.True(t, errors.As(outer, &found))
	assert.Same(t, outer, found)
	assert.True(t, errors.Is(outer, inner))
}

func TestFormatValidationErrors(t *testing.T) {
	type payload struct {
		JointKey string `validate:"required"`
		Note     string `validate:"max=3"`
	}

	validate := validator.New()
	err := validate.Struct(payload{Note: "too long"})
	require.Error(t, err)

	assert.Equal(t, "jointkey is required", FormatFirstValidationError(err))
	assert.Equal(t, "jointkey is required, note must be at most 3", FormatAllValidationErrors(err))
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(errors.New("plain")))
}
