// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>

/*
Package oracle exposes the keystream engine as a black box
(key, iv) -> keystream prefix. External collaborators that re-express
the update function in another computational model (reversible-circuit
encodings and the like) validate themselves against these calls and
against the checked-in vector fixtures; nothing beyond the black-box
surface crosses that boundary.
*/
package oracle

import (
	"encoding/hex"

	"triviumcipher/defErr"
	"triviumcipher/trivium"
)

// KeystreamPrefix runs a fresh engine for the hex key/iv pair and
// returns the first nBytes of keystream, hex encoded.
func KeystreamPrefix(keyHex, ivHex string, nBytes int) (string, error) {
	cipher, err := readyCipher(keyHex, ivHex)
	if err != nil {
		return ``, err
	}
	prefix := make([]byte, nBytes)
	if err = cipher.Keystream(prefix); err != nil {
		return ``, err
	}
	return hex.EncodeToString(prefix), nil
}

/*
	KnownPlaintextPair encrypts plaintext under a fresh engine and
	returns the ciphertext, yielding a known-plaintext/known-keystream
	pair for the given key/iv. Decryption is the identical call.
*/
func KnownPlaintextPair(keyHex, ivHex string, plaintext []byte) ([]byte, error) {
	cipher, err := readyCipher(keyHex, ivHex)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(plaintext))
	cipher.XORKeyStream(ciphertext, plaintext)
	return ciphertext, nil
}

func readyCipher(keyHex, ivHex string) (*trivium.Cipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, defErr.DescribeThenConcat(`oracle: malformed key hex`, err)
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, defErr.DescribeThenConcat(`oracle: malformed iv hex`, err)
	}
	return trivium.NewReady(key, iv)
}
