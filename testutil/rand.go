package testutil

import (
	"crypto/rand"
	"fmt"
)

const alphaNumCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphaNum returns a random lowercase alphanumeric string, suitable
// as a suffix for docker container names. Length must be positive.
func RandomAlphaNum(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	buff := make([]byte, length)
	if _, err := rand.Read(buff); err != nil {
		return "", err
	}
	for i, b := range buff {
		buff[i] = alphaNumCharset[int(b)%len(alphaNumCharset)]
	}

	return string(buff), nil
}
