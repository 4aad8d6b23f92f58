// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package streamciphers

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20"
)

const (
	chacha20KeySize = chacha20.KeySize
	chacha20IvSize  = chacha20.NonceSizeX
)

// Chacha20 wraps the unauthenticated XChaCha20 stream. Kept in the
// suite as a fast software baseline next to the hardware-oriented
// Trivium and ZUC members.
type Chacha20 struct {
	Key       [chacha20KeySize]byte
	Iv        [chacha20IvSize]byte
	encstream cipher.Stream
	decstream cipher.Stream
}

func (c *Chacha20) generateStream(stream *cipher.Stream) (err error) {
	if *stream != nil {
		return nil
	}
	*stream, err = chacha20.NewUnauthenticatedCipher(c.Key[:], c.Iv[:])
	return err
}

func (c *Chacha20) EncryptFlow(msg []byte) ([]byte, error) {
	if err := c.generateStream(&c.encstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	c.encstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (c *Chacha20) DecryptFlow(msg []byte) ([]byte, error) {
	if err := c.generateStream(&c.decstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	c.decstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (c *Chacha20) GetKeyLen() uint64   { return chacha20KeySize }
func (c *Chacha20) GetIvLen() uint64    { return chacha20IvSize }
func (c *Chacha20) GetKeyIvLen() uint64 { return chacha20KeySize + chacha20IvSize }
func (c *Chacha20) GetKey() []byte      { return c.Key[:] }
func (c *Chacha20) GetIv() []byte       { return c.Iv[:] }

func (c *Chacha20) SetKey(key []byte) {
	c.Key = [chacha20KeySize]byte(key)
	c.encstream, c.decstream = nil, nil
}

func (c *Chacha20) SetIv(iv []byte) {
	c.Iv = [chacha20IvSize]byte(iv)
	c.encstream, c.decstream = nil, nil
}
