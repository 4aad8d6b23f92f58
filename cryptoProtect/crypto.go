// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"crypto/rand"
	"errors"

	streamciphers "triviumcipher/cryptoProtect/streamCiphers"
)

/*
	The suite pins one stream cipher per session. Trivium is the primary
	member; ZUC and XChaCha20 stay selectable for callers cross-checking
	keystream consumers against an independent cipher family. Once a
	cipher is picked there is no renegotiation short of discarding the
	instance and its key material.
*/

type stream_cipher_choice uint

const (
	PICK_TRIVIUM  stream_cipher_choice = iota + 1 // trivium stream cipher (default)
	PICK_ZUC_128                                  // zuc-128 (EEA3) stream cipher
	PICK_CHACHA20                                 // xchacha20 stream cipher
)

type StreamCipher interface {
	// SetKey from bytes; resets any stream already derived from the old key.
	SetKey(key []byte)

	// SetIv from bytes; resets any stream already derived from the old iv.
	SetIv(iv []byte)

	// return the key in the representation of bytes
	GetKey() []byte

	// return the iv in the representation of bytes
	GetIv() []byte

	// encrypt message by xoring it against the keystream.
	EncryptFlow(msg []byte) ([]byte, error)

	// decrypt message; the same xor walked from an independent stream.
	DecryptFlow(msg []byte) ([]byte, error)

	GetKeyLen() uint64
	GetIvLen() uint64
	GetKeyIvLen() uint64
}

var streamCipherSuites = map[stream_cipher_choice]func() StreamCipher{
	PICK_TRIVIUM:  func() StreamCipher { return &streamciphers.Trivium{} },
	PICK_ZUC_128:  func() StreamCipher { return &streamciphers.ZUC{} },
	PICK_CHACHA20: func() StreamCipher { return &streamciphers.Chacha20{} },
}

// names accepted by NewStreamCipherByName, for callers configured from text.
var streamCipherNames = map[string]stream_cipher_choice{
	`trivium`:  PICK_TRIVIUM,
	`zuc-128`:  PICK_ZUC_128,
	`chacha20`: PICK_CHACHA20,
}

var ErrUnknownStreamCipher = errors.New(`cryptoprotect: unknown stream cipher`)

func NewStreamCipher(choice stream_cipher_choice) (StreamCipher, error) {
	functor, ok := streamCipherSuites[choice]
	if !ok {
		return nil, ErrUnknownStreamCipher
	}
	return functor(), nil
}

func NewStreamCipherByName(name string) (StreamCipher, error) {
	choice, ok := streamCipherNames[name]
	if !ok {
		return nil, ErrUnknownStreamCipher
	}
	return NewStreamCipher(choice)
}

/*
	GeneratePresessionKey draws a random key and iv sized for the given
	cipher. Each suite member reports its own lengths so nothing here is
	truncated or padded.
*/
func GeneratePresessionKey(cipher StreamCipher) ([]byte, []byte, error) {
	key := make([]byte, cipher.GetKeyLen())
	if _, err := rand.Read(key); err != nil {
		return nil, nil, err
	}

	iv := make([]byte, cipher.GetIvLen())
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, err
	}
	return key, iv, nil
}
