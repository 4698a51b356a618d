// Package rng provides the seeded randomness used to shuffle piles.
//
// Shuffles must replay identically for the same seed on every platform and
// Go release, which math/rand's default source does not promise. Source
// derives its stream from ChaCha20 instead, so the sequence is fixed by the
// cipher and the seed alone.
package rng

import (
	"encoding/binary"
	"math/rand"
	"time"

	"golang.org/x/crypto/chacha20"
)

const bufSize = 64 * 8

// Source is a rand.Source64 backed by a ChaCha20 keystream.
type Source struct {
	seed   int64
	cipher *chacha20.Cipher
	buf    [bufSize]byte
	pos    int
}

var _ rand.Source64 = (*Source)(nil)

func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// New returns a *rand.Rand over a ChaCha20 source. Seed 0 => time-based.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(NewSource(seed))
}

// Seed rekeys the stream. The key is the little-endian seed repeated over
// 32 bytes; the nonce is zero.
func (s *Source) Seed(seed int64) {
	var key [chacha20.KeySize]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], uint64(seed))
	}
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are constants, so this cannot happen
		panic(err)
	}
	s.seed = seed
	s.cipher = c
	s.pos = bufSize
}

func (s *Source) Uint64() uint64 {
	if s.pos+8 > bufSize {
		clear(s.buf[:])
		s.cipher.XORKeyStream(s.buf[:], s.buf[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// SeedValue reports the seed the stream was last keyed with.
func (s *Source) SeedValue() int64 {
	return s.seed
}
