package serverutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/pkg/apperr"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Rating int    `validate:"required,min=1,max=5"`
	Action string `validate:"omitempty,oneof=approve reject"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "a@b.com", Rating: 3})
	assert.NoError(t, err)
}

func TestValidateRequestFieldMessages(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email", Rating: 9, Action: "maybe"})
	require.Error(t, err)

	var domainErr *apperr.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, apperr.KindValidation, domainErr.Kind)

	assert.Equal(t, "must be a valid email address", domainErr.Fields["email"])
	assert.Equal(t, "must be at most 5", domainErr.Fields["rating"])
	assert.Equal(t, "must be one of: approve reject", domainErr.Fields["action"])
}

func TestValidateRequestMissingRequired(t *testing.T) {
	err := ValidateRequest(sampleRequest{})
	require.Error(t, err)

	var domainErr *apperr.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "this field is required", domainErr.Fields["email"])
}
