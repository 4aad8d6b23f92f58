// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package streamciphers

import (
	"crypto/cipher"

	"github.com/emmansun/gmsm/zuc"
)

const (
	zucKeySize = 16
	zucIvSize  = 16
)

// ZUC wraps the 128-bit ZUC stream cipher (EEA3 profile) behind the
// same lazily constructed stream pair as the other suite members.
type ZUC struct {
	Key       [zucKeySize]byte
	Iv        [zucIvSize]byte
	encstream cipher.Stream
	decstream cipher.Stream
}

func (z *ZUC) generateStream(stream *cipher.Stream) (err error) {
	if *stream != nil {
		return nil
	}
	*stream, err = zuc.NewCipher(z.Key[:], z.Iv[:])
	return err
}

func (z *ZUC) EncryptFlow(msg []byte) ([]byte, error) {
	if err := z.generateStream(&z.encstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	z.encstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (z *ZUC) DecryptFlow(msg []byte) ([]byte, error) {
	if err := z.generateStream(&z.decstream); err != nil {
		return nil, err
	}
	xor_res := make([]byte, len(msg))
	z.decstream.XORKeyStream(xor_res, msg)
	return xor_res, nil
}

func (z *ZUC) GetKeyLen() uint64   { return zucKeySize }
func (z *ZUC) GetIvLen() uint64    { return zucIvSize }
func (z *ZUC) GetKeyIvLen() uint64 { return zucKeySize + zucIvSize }
func (z *ZUC) GetKey() []byte      { return z.Key[:] }
func (z *ZUC) GetIv() []byte       { return z.Iv[:] }

func (z *ZUC) SetKey(key []byte) {
	z.Key = [zucKeySize]byte(key)
	z.encstream, z.decstream = nil, nil
}

func (z *ZUC) SetIv(iv []byte) {
	z.Iv = [zucIvSize]byte(iv)
	z.encstream, z.decstream = nil, nil
}
