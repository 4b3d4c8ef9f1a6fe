// Package wyrand implements the WyRand pseudo-random number generator.
//
// WyRand keeps a single 64-bit state word and advances it with an addition
// and a wide multiply per output, making it one of the fastest generators
// that still passes the BigCrush and PractRand statistical suites. It is
// NOT cryptographically secure: never use it for secrets, keys or tokens.
// Use it for simulations, sampling, procedural generation and test data.
//
// A WyRand is a plain mutable value with no internal locking. Give each
// goroutine its own generator or provide external synchronization.
package wyrand

import (
	"encoding/binary"
	"io"
	"math/bits"
)

// Constants from the wyhash family. Changing either breaks compatibility
// with every other WyRand implementation.
const (
	wyAdd = 0xa0761d6478bd642f
	wyXor = 0xe7037ed1a0b428db
)

// WyRand is a WyRand generator. Construct one with New, NewFromSeed,
// NewFromSource or NewFromReader. The zero value behaves like New(0), but
// callers should always seed explicitly.
type WyRand struct {
	seed uint64
}

// New returns a generator seeded with the given value. The value becomes
// the state verbatim; zero is valid and not special-cased.
func New(seed uint64) *WyRand {
	return &WyRand{seed: seed}
}

// NewFromSeed returns a generator seeded from 8 bytes interpreted as a
// little-endian 64-bit integer.
func NewFromSeed(seed [8]byte) *WyRand {
	return New(binary.LittleEndian.Uint64(seed[:]))
}

// NewFromSource returns a generator seeded with a single 64-bit draw
// from src.
func NewFromSource(src Source) *WyRand {
	return New(src.Uint64())
}

// NewFromReader returns a generator seeded with 8 bytes read from r,
// interpreted little-endian. Pass crypto/rand's Reader to seed from OS
// entropy. A read error is returned unchanged.
func NewFromReader(r io.Reader) (*WyRand, error) {
	var seed [8]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return NewFromSeed(seed), nil
}

// Uint64 advances the generator one step and returns the next 64-bit
// output word.
func (r *WyRand) Uint64() uint64 {
	r.seed += wyAdd
	hi, lo := bits.Mul64(r.seed, r.seed^wyXor)
	return hi ^ lo
}

// Uint32 returns the low 32 bits of the next output word. It consumes one
// full step, so a Uint32 call advances the stream exactly as far as a
// Uint64 call.
func (r *WyRand) Uint32() uint32 {
	return uint32(r.Uint64())
}

// Fill fills p with generator output, eight little-endian bytes per step.
// If len(p) is not a multiple of 8 the final word contributes only its
// low-order bytes. Filling an empty slice consumes no output.
func (r *WyRand) Fill(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var w [8]byte
		binary.LittleEndian.PutUint64(w[:], r.Uint64())
		copy(p, w[:])
	}
}

// Read implements io.Reader. It fills p like Fill and always returns
// len(p) with a nil error; the generator has no failure mode.
func (r *WyRand) Read(p []byte) (int, error) {
	r.Fill(p)
	return len(p), nil
}

// String implements fmt.Stringer. The state word is deliberately omitted
// so a generator can be logged without leaking its position in the stream.
// Use MarshalJSON when the state actually needs to be persisted.
func (r *WyRand) String() string {
	return "WyRand(..)"
}

// GoString implements fmt.GoStringer so the %#v verb stays opaque too.
func (r *WyRand) GoString() string {
	return r.String()
}
