// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>

/*
Package trivium implements the Trivium synchronous stream cipher of
De Cannière and Preneel: three coupled nonlinear feedback shift
registers of 93, 84 and 111 bits, clocked one bit per step after a
mandatory warm-up of 4*288 steps.

Bit ordering follows the eSTREAM reference convention and is verified
against the published test vectors:
  - key/IV bit 1 (the bit loaded into position 1 of register A resp. B)
    is the most significant bit of the LAST byte; bytes load tail-first,
    most-significant bit first within each byte.
  - keystream bits pack least-significant bit first into output bytes,
    so the first generated bit is bit 0 of the first keystream byte.

Any transposition of either convention changes every downstream byte,
hence both are fixed here and must not be made configurable.
*/
package trivium

import (
	"errors"
	"fmt"

	"triviumcipher/defErr"
)

const (
	KeySize = 10 // 80-bit key, presented as a fixed 10-byte sequence
	IVSize  = 10 // 80-bit initialization vector, likewise 10 bytes

	lenA = 93
	lenB = 84
	lenC = 111

	stateSize    = lenA + lenB + lenC // 288
	warmUpRounds = 4 * stateSize      // 1152
)

var (
	ErrInvalidKeyLength = errors.New(`trivium: key must be exactly 10 bytes (80 bits)`)
	ErrInvalidIVLength  = errors.New(`trivium: iv must be exactly 10 bytes (80 bits)`)
	ErrStateNotWarmedUp = errors.New(`trivium: state not warmed up, call WarmUp before generating`)
	ErrAlreadyWarmedUp  = errors.New(`trivium: state already warmed up`)
	ErrStateNotLoaded   = errors.New(`trivium: state not loaded, construct via New`)
)

type phase uint8

const (
	phaseUninitialized phase = iota
	phaseLoaded
	phaseReady
)

/*
	Cipher is one independent 288-bit Trivium state. It is a plain value:
	no global state, no sharing. A Cipher must not be clocked from more
	than one goroutine; for parallel keystream generation take a Clone at
	a checkpoint and advance the copies independently.
*/
type Cipher struct {
	a, b, c register
	phase   phase
}

/*
	New loads an 80-bit key and 80-bit IV into a fresh state:

		A[1..80] = key, A[81..93] = 0
		B[1..80] = iv,  B[81..84] = 0
		C[1..108] = 0,  C[109..111] = 1

	The three fixed ones in C keep the state off the all-zero fixed point.
	The returned Cipher is loaded but NOT ready: WarmUp must run before
	any keystream is drawn. Key and IV of any other length are rejected,
	never truncated or padded.
*/
func New(key, iv []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, defErr.Concat(ErrInvalidKeyLength, fmt.Sprintf(`got %d bytes`, len(key)))
	}
	if len(iv) != IVSize {
		return nil, defErr.Concat(ErrInvalidIVLength, fmt.Sprintf(`got %d bytes`, len(iv)))
	}
	c := &Cipher{
		a:     register{width: lenA},
		b:     register{width: lenB},
		c:     register{width: lenC},
		phase: phaseLoaded,
	}
	for i := uint(1); i <= 80; i++ {
		c.a.set(i, packedBit(key, i))
		c.b.set(i, packedBit(iv, i))
	}
	c.c.set(109, 1)
	c.c.set(110, 1)
	c.c.set(111, 1)
	return c, nil
}

// NewReady is New followed by WarmUp, for callers with no use for the
// intermediate loaded state.
func NewReady(key, iv []byte) (*Cipher, error) {
	c, err := New(key, iv)
	if err != nil {
		return nil, err
	}
	if err = c.WarmUp(); err != nil {
		return nil, err
	}
	return c, nil
}

// packedBit extracts 1-indexed bit i of an 80-bit key/IV per the
// package convention: bit 1 is the MSB of the last byte.
func packedBit(p []byte, i uint) uint64 {
	return uint64(p[uint(len(p))-1-(i-1)/8]>>(7-(i-1)%8)) & 1
}

/*
	step performs one clock of the cipher and returns the keystream bit z.
	All taps read the pre-step register contents; the three shifts only
	happen after every read of the step completed.
*/
func (c *Cipher) step() uint64 {
	t1 := c.a.bit(66) ^ c.a.bit(93)
	t2 := c.b.bit(69) ^ c.b.bit(84)
	t3 := c.c.bit(66) ^ c.c.bit(111)
	z := t1 ^ t2 ^ t3

	// The AND terms cross-feed the NEXT register; this wiring is the
	// whole source of nonlinearity and must stay exactly as is.
	f1 := t1 ^ (c.a.bit(91) & c.a.bit(92)) ^ c.b.bit(78)
	f2 := t2 ^ (c.b.bit(82) & c.b.bit(83)) ^ c.c.bit(87)
	f3 := t3 ^ (c.c.bit(109) & c.c.bit(110)) ^ c.a.bit(69)

	c.b.shiftIn(f1)
	c.c.shiftIn(f2)
	c.a.shiftIn(f3)
	return z
}

/*
	WarmUp clocks the loaded state 1152 times with the output discarded,
	diffusing key and IV material through all three registers. It must
	run exactly once per Cipher: a second call would silently shift the
	keystream the caller observes, so it fails instead.
*/
func (c *Cipher) WarmUp() error {
	switch c.phase {
	case phaseReady:
		return ErrAlreadyWarmedUp
	case phaseUninitialized:
		return ErrStateNotLoaded
	}
	for i := 0; i < warmUpRounds; i++ {
		c.step()
	}
	c.phase = phaseReady
	return nil
}

// NextBit advances the state by one clock and returns the keystream bit.
func (c *Cipher) NextBit() (byte, error) {
	if c.phase != phaseReady {
		return 0, ErrStateNotWarmedUp
	}
	return byte(c.step()), nil
}

/*
	Generate returns the next n keystream bits, one 0/1 value per element,
	earliest bit first. Splitting one Generate into several yields the
	identical bit sequence: the keystream is a single continuous stream,
	never re-randomized per call.
*/
func (c *Cipher) Generate(n int) ([]byte, error) {
	if c.phase != phaseReady {
		return nil, ErrStateNotWarmedUp
	}
	if n < 0 {
		return nil, defErr.DescribeThenConcat(fmt.Sprintf(`trivium: negative bit count %d`, n), nil)
	}
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(c.step())
	}
	return bits, nil
}

// Keystream fills p with the next len(p)*8 keystream bits packed
// least-significant bit first.
func (c *Cipher) Keystream(p []byte) error {
	if c.phase != phaseReady {
		return ErrStateNotWarmedUp
	}
	for i := range p {
		var b uint64
		for j := uint(0); j < 8; j++ {
			b |= c.step() << j
		}
		p[i] = byte(b)
	}
	return nil
}

/*
	XORKeyStream xors src with the next len(src) keystream bytes into dst,
	implementing crypto/cipher.Stream. Encryption and decryption are the
	same operation. Following the crypto/cipher contract it panics rather
	than returning an error: on a state that was never warmed up, or when
	dst is shorter than src.
*/
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if c.phase != phaseReady {
		panic(ErrStateNotWarmedUp)
	}
	if len(dst) < len(src) {
		panic(`trivium: output smaller than input`)
	}
	for i, v := range src {
		var b uint64
		for j := uint(0); j < 8; j++ {
			b |= c.step() << j
		}
		dst[i] = v ^ byte(b)
	}
}

/*
	Clone returns an independent copy of the full 288-bit state. Cloning
	at a checkpoint is the only safe way to draw keystream concurrently:
	advance each copy from its own goroutine, never share one Cipher.
*/
func (c *Cipher) Clone() *Cipher {
	dup := *c
	return &dup
}
