package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDuplicateClaim, KindOf(DuplicateClaim()))
	assert.Equal(t, KindAlreadyReviewed, KindOf(AlreadyReviewed()))
	assert.Equal(t, KindNotFound, KindOf(NotFound("donation item")))
	assert.Equal(t, KindInvalidTransition, KindOf(InvalidTransition("claim is %s", "rejected")))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"title": "required"})
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "required", err.Fields["title"])
	assert.Equal(t, "validation failed", err.Error())
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "donation item not found", NotFound("donation item").Error())
	assert.Equal(t, "claim is rejected", InvalidTransition("claim is %s", "rejected").Error())
}
