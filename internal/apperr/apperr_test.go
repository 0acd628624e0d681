package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-press/inkwell/internal/apperr"
)

func TestFromPassesTypedErrorsThrough(t *testing.T) {
	orig := apperr.NotFound("Post not found")
	assert.Same(t, orig, apperr.From(orig))

	wrapped := fmt.Errorf("getting post: %w", orig)
	assert.Same(t, orig, apperr.From(wrapped))
}

func TestFromMapsUnknownToInternal(t *testing.T) {
	e := apperr.From(errors.New("connection reset"))
	assert.Equal(t, apperr.KindInternal, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.StatusCode)
	// Raw failure text never reaches the caller.
	assert.NotContains(t, e.Message, "connection reset")
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.Validation("x").StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.Conflict("x").StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.Unauthorized("x").StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.PayloadTooLarge("x").StatusCode)
	assert.Equal(t, http.StatusNotFound, apperr.NotFound("x").StatusCode)
	assert.Equal(t, http.StatusForbidden, apperr.NotFoundActor("x").StatusCode)
	assert.Equal(t, http.StatusBadRequest, apperr.BadRequest("x").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, apperr.Storage("x").StatusCode)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", apperr.Conflict("Email already exists"))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.False(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.False(t, apperr.IsKind(errors.New("plain"), apperr.KindConflict))
}
