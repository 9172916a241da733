// Package identifier produces short, human-distinguishable opaque ids
// prefixed by entity type, e.g. "ORD_k2j9x1q".
package identifier

import (
	"math/rand"
	"strings"
)

const (
	suffixLen = 7
	digits    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generate returns prefix followed by a 7-character alphanumeric suffix taken
// from the base-36 expansion of a random fractional value. Uniqueness is not
// enforced by construction; the collision probability is non-zero and accepted
// for low-volume use.
func Generate(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + suffixLen)
	b.WriteString(prefix)

	f := rand.Float64()
	for i := 0; i < suffixLen; i++ {
		f *= 36
		d := int(f)
		b.WriteByte(digits[d])
		f -= float64(d)
	}

	return b.String()
}
