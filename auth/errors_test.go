package auth_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

func TestErrorHTTPCodes(t *testing.T) {
	// conflicts surface as 400, matching the public API contract
	assert.Equal(t, goerrors.CodeBadRequest, auth.ErrEmailTaken.Code)
	assert.Equal(t, goerrors.CodeBadRequest, auth.ErrInvalidEmail.Code)
	assert.Equal(t, goerrors.CodeBadRequest, auth.ErrInvalidCode.Code)
	assert.Equal(t, goerrors.CodeNotFound, auth.ErrUserNotFound.Code)
	assert.Equal(t, goerrors.CodeForbidden, auth.ErrEmailNotVerified.Code)
	assert.Equal(t, goerrors.CodeForbidden, auth.ErrNotManager.Code)
	assert.Equal(t, goerrors.CodeUnauthorized, auth.ErrUnauthorized.Code)
	assert.Equal(t, goerrors.CodeUnauthorized, auth.ErrTokenExpired.Code)
	assert.Equal(t, goerrors.CodeUnauthorized, auth.ErrTokenMalformed.Code)
}

func TestIsConflict(t *testing.T) {
	assert.True(t, auth.IsConflict(auth.ErrEmailTaken))
	assert.True(t, auth.IsConflict(goerrors.New("dup", goerrors.CategoryConflict)))
	assert.False(t, auth.IsConflict(goerrors.New("nope", goerrors.CategoryNotFound)))
	assert.False(t, auth.IsConflict(nil))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", auth.NormalizeEmail("  A@X.COM "))
	assert.Equal(t, "a@x.com", auth.NormalizeEmail("a@x.com"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, auth.ComparePasswordAndHash("s3cret-pass", hash))
	assert.Error(t, auth.ComparePasswordAndHash("wrong-pass", hash))
}
