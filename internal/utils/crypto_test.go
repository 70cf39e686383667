// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHMACSignature(t *testing.T) {
	payload := []byte(`{"ref":"refs/heads/main"}`)
	secret := "webhook-secret"

	signature := "sha256=" + ComputeHMACSHA256(payload, secret)
	assert.True(t, ValidateHMACSignature(payload, secret, signature))

	assert.False(t, ValidateHMACSignature(payload, secret, ""))
	assert.False(t, ValidateHMACSignature(payload, "wrong-secret", signature))
	assert.False(t, ValidateHMACSignature([]byte("tampered"), secret, signature))
	assert.False(t, ValidateHMACSignature(payload, secret, "sha256=deadbeef"))
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(32)
	require.NoError(t, err)
	b, err := GenerateRandomString(32)
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
