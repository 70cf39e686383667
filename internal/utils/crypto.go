// internal/utils/crypto.go
package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// ComputeHMACSHA256 returns the hex digest of the payload under the secret.
func ComputeHMACSHA256(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateHMACSignature compares an sha256= prefixed signature header value
// against the expected digest in constant time.
func ValidateHMACSignature(payload []byte, secret, signature string) bool {
	expected := "sha256=" + ComputeHMACSHA256(payload, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
