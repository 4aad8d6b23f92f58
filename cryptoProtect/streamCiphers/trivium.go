// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package streamciphers

import (
	"crypto/cipher"

	"triviumcipher/trivium"
)

const (
	triviumKeySize = trivium.KeySize
	triviumIvSize  = trivium.IVSize
)

/*
	Trivium adapts the core keystream engine to the suite interface.
	The underlying state is loaded and warmed up lazily on the first
	flow, so a fully clocked cipher.Stream sits behind every call.
	Encrypt and decrypt directions keep independent states: both start
	from the same key/iv and the stream-xor is its own inverse.
*/
type Trivium struct {
	Key       [triviumKeySize]byte
	Iv        [triviumIvSize]byte
	encstream cipher.Stream
	decstream cipher.Stream
}

func (t *Trivium) generateStream(stream *cipher.Stream) (err error) {
	if *stream != nil {
		return nil
	}
	*stream, err = trivium.NewReady(t.Key[:], t.Iv[:])
	return err
}

func (t *Trivium) EncryptFlow(msg []byte) ([]byte, error) {
	if err := t.generateStream(&t.encstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	t.encstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (t *Trivium) DecryptFlow(msg []byte) ([]byte, error) {
	if err := t.generateStream(&t.decstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	t.decstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (t *Trivium) GetKeyLen() uint64   { return triviumKeySize }
func (t *Trivium) GetIvLen() uint64    { return triviumIvSize }
func (t *Trivium) GetKeyIvLen() uint64 { return triviumKeySize + triviumIvSize }
func (t *Trivium) GetKey() []byte      { return t.Key[:] }
func (t *Trivium) GetIv() []byte       { return t.Iv[:] }

func (t *Trivium) SetKey(key []byte) {
	t.Key = [triviumKeySize]byte(key)
	t.encstream, t.decstream = nil, nil
}

func (t *Trivium) SetIv(iv []byte) {
	t.Iv = [triviumIvSize]byte(iv)
	t.encstream, t.decstream = nil, nil
}
