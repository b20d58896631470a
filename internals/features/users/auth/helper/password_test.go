package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPasswordHash(hash, "s3cret-pass"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-pass"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("ravi", "ravi@example.com", "longenough"))

	assert.Error(t, ValidateRegisterInput("", "ravi@example.com", "longenough"))
	assert.Error(t, ValidateRegisterInput("ravi", "not-an-email", "longenough"))
	assert.Error(t, ValidateRegisterInput("ravi", "ravi@example.com", "short"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("ravi@example.com", "whatever"))
	assert.Error(t, ValidateLoginInput("  ", "whatever"))
	assert.Error(t, ValidateLoginInput("ravi", ""))
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, ValidateResetPassword("ravi@example.com", "longenough"))
	assert.Error(t, ValidateResetPassword("bad", "longenough"))
	assert.Error(t, ValidateResetPassword("ravi@example.com", "short"))
}
