package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndDecode(t *testing.T) {
	v := NewVerifier("test-secret")

	token, err := v.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := v.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	v := NewVerifier("test-secret")

	_, err := v.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = v.Decode("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	signer := NewVerifier("secret-a")
	verifier := NewVerifier("secret-b")

	token, err := signer.Sign(1)
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsTampered(t *testing.T) {
	v := NewVerifier("test-secret")
	token, err := v.Sign(1)
	require.NoError(t, err)

	_, err = v.Decode(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("hunter23", hash))
}
