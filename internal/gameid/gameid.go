// Package gameid generates match identifiers: UUIDv7 values written as 26
// lowercase Crockford base32 characters, so IDs sort by creation time.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, without i, l, o and u
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID
const Length = 26

// Source supplies the random part of an ID. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator creates IDs from a clock and a random source
type Generator struct {
	clock quartz.Clock
	src   Source // nil reads crypto/rand
}

// NewGenerator creates a generator. A nil clock uses the wall clock and a nil
// source uses crypto/rand.
func NewGenerator(clock quartz.Clock, src Source) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, src: src}
}

// Generate creates an ID from the wall clock and crypto/rand
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID
func (g *Generator) Generate() string {
	return encode(g.uuidV7())
}

func (g *Generator) uuidV7() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp, then random bits
	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.src != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.src.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
	return id
}

// encode writes the 128 bits as 26 five-bit groups. The first group holds
// only 3 bits, so the first character is always 0-7.
func encode(id [16]byte) string {
	var hi, lo uint64
	for i := range 8 {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[i+8])
	}

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Validate checks that id is well formed
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("match ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
