package common

import (
	"math/rand/v2"
	"strings"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTemporaryPassword returns a random alphanumeric string of the given
// length. The result is a shown-once credential, so math/rand is sufficient.
func GenerateTemporaryPassword(length int) string {
	if length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphanumeric[rand.IntN(len(alphanumeric))])
	}
	return b.String()
}
