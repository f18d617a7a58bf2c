package idgen

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const (
	// Length is the number of random symbols in a generated identifier.
	Length = 20
	// Alphabet lists the symbols identifiers are drawn from.
	Alphabet = "1234567890abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator returns a new identifier on every call.
type Generator func() string

// Generate returns prefix followed by Length random symbols from Alphabet.
func Generate(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + Length)
	b.WriteString(prefix)
	for range Length {
		b.WriteByte(Alphabet[rand.IntN(len(Alphabet))])
	}
	return b.String()
}

// Default generates identifiers without a prefix.
func Default() string {
	return Generate("")
}

// WithPrefix returns a Generator that prepends prefix to every identifier.
func WithPrefix(prefix string) Generator {
	return func() string { return Generate(prefix) }
}

// UUID generates random (version 4) UUID strings.
func UUID() string {
	return uuid.NewString()
}

// FromName resolves a generator by its configuration name.
// Unknown and empty names fall back to Default.
func FromName(name string) Generator {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uuid":
		return UUID
	default:
		return Default
	}
}
