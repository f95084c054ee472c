// Package token generates short, human-shareable codes.
package token

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Alphabet is the set of characters codes are drawn from.
// It omits 0/O/o and 1/I/l, which are easy to misread.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// maxUnbiased is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are rejected to keep selection uniform.
const maxUnbiased = 256 - 256%len(Alphabet)

// maxReads bounds buffer refills so a source yielding only rejected bytes
// fails instead of spinning.
const maxReads = 8

// ErrSourceExhausted is returned when the random source keeps yielding
// bytes that rejection sampling discards.
var ErrSourceExhausted = errors.New("random source yielded no usable bytes")

// Generator produces codes from a random byte source.
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading from src.
// A nil src falls back to crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// Generate returns a code of exactly length characters from Alphabet.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be greater than 0, got %d", length)
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)
	for reads := 0; len(out) < length; reads++ {
		if reads == maxReads {
			return "", ErrSourceExhausted
		}
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a code of exactly length characters using crypto/rand.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// WellFormed reports whether code is non-empty, at most maxLength long and
// drawn only from Alphabet.
func WellFormed(code string, maxLength int) bool {
	if code == "" || len(code) > maxLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
