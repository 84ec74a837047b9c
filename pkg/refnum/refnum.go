package refnum

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Prefix prepended to every reference number
	Prefix = "KGG"

	// Length number of random characters after the prefix
	Length = 6

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrInvalidFormat reference number does not match PREFIX + 6 upper alnum
var ErrInvalidFormat = errors.New("refnum: invalid reference number format")

// Generate returns a new random reference number, e.g. "KGG7Q2X9A".
func Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(len(Prefix) + Length)
	sb.WriteString(Prefix)

	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("refnum: read random: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// Normalize upper-cases and trims the input, then validates it.
func Normalize(ref string) (string, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if err := Validate(ref); err != nil {
		return "", err
	}
	return ref, nil
}

// Validate checks the reference number format.
func Validate(ref string) error {
	if len(ref) != len(Prefix)+Length || !strings.HasPrefix(ref, Prefix) {
		return ErrInvalidFormat
	}
	for _, c := range ref[len(Prefix):] {
		if !strings.ContainsRune(alphabet, c) {
			return ErrInvalidFormat
		}
	}
	return nil
}
