// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package trivium

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"triviumcipher/utils"
)

var (
	zeroKey = make([]byte, KeySize)
	zeroIv  = make([]byte, IVSize)
)

// Published eSTREAM reference keystreams, first 32 bytes each.
var publishedVectors = []struct {
	name, key, iv, keystream string
}{
	{
		`zero-key-zero-iv`,
		`00000000000000000000`, `00000000000000000000`,
		`fbe0bf265859051b517a2e4e239fc97f563203161907cf2de7a8790fa1b2e9cd`,
	},
	{
		`estream-keyed`,
		`0053a6f94c9ff24598eb`, `0d74db42a91077de45ac`,
		`f4cd954a717f26a7d6930830c4e7cf0819f80e03f25f342c64adc66aba7f8a8e`,
	},
	{
		`msb-key-zero-iv`,
		`80000000000000000000`, `00000000000000000000`,
		`38eb86ff730d7a9caf8df13a4420540dbb7b651464c87501552041c249f29a64`,
	},
}

func mustReady(t *testing.T, key, iv []byte) *Cipher {
	t.Helper()
	cipher, err := NewReady(key, iv)
	if err != nil {
		t.Fatal(err)
	}
	return cipher
}

func TestPublishedVectors(t *testing.T) {
	for _, vec := range publishedVectors {
		cipher := mustReady(t, utils.MustHexDecode(vec.key), utils.MustHexDecode(vec.iv))
		want := utils.MustHexDecode(vec.keystream)
		got := make([]byte, len(want))
		if err := cipher.Keystream(got); err != nil {
			t.Error(vec.name, err)
			continue
		}
		if same, why := utils.CompareByteSliceEqualOrNot(got, want); !same {
			log.Println(`produced keystream for `, vec.name, `: `)
			utils.BytesHexForm(got)
			t.Error(vec.name, why)
		}
	}
}

func TestDeterminism(t *testing.T) {
	key := utils.MustHexDecode(`0123456789abcdef1234`)
	iv := utils.MustHexDecode(`fedcba98765432100000`)
	first := mustReady(t, key, iv)
	second := mustReady(t, key, iv)

	a, err := first.Generate(1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := second.Generate(1000)
	if err != nil {
		t.Fatal(err)
	}
	if same, why := utils.CompareByteSliceEqualOrNot(a, b); !same {
		t.Error(`fresh states with identical inputs diverged: `, why)
	}
}

// The keystream is one continuous sequence: two short draws must equal
// one long draw from a fresh state, regardless of how they are batched.
func TestPrefixProperty(t *testing.T) {
	key := utils.MustHexDecode(`00112233445566778899`)
	iv := utils.MustHexDecode(`99887766554433221100`)

	whole := mustReady(t, key, iv)
	want, err := whole.Generate(100)
	if err != nil {
		t.Fatal(err)
	}

	split := mustReady(t, key, iv)
	head, err := split.Generate(40)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := split.Generate(60)
	if err != nil {
		t.Fatal(err)
	}
	got := append(head, tail...)
	if same, why := utils.CompareByteSliceEqualOrNot(got, want); !same {
		t.Error(`split generation diverged from one-shot generation: `, why)
	}

	// NextBit walks the very same sequence bit by bit.
	single := mustReady(t, key, iv)
	for i, expect := range want {
		bit, err := single.NextBit()
		if err != nil {
			t.Fatal(err)
		}
		if bit != expect {
			t.Errorf(`NextBit diverged at bit %d: got %d, want %d`, i, bit, expect)
			break
		}
	}
}

func TestKeystreamMatchesGenerate(t *testing.T) {
	key := utils.MustHexDecode(`0053a6f94c9ff24598eb`)
	iv := utils.MustHexDecode(`0d74db42a91077de45ac`)

	packed := make([]byte, 16)
	if err := mustReady(t, key, iv).Keystream(packed); err != nil {
		t.Fatal(err)
	}
	bits, err := mustReady(t, key, iv).Generate(16 * 8)
	if err != nil {
		t.Fatal(err)
	}
	repacked := make([]byte, 16)
	for i, bit := range bits {
		repacked[i/8] |= bit << (i % 8)
	}
	if same, why := utils.CompareByteSliceEqualOrNot(packed, repacked); !same {
		t.Error(`bitwise and packed generation disagree: `, why)
	}
}

func TestZeroInputsNotZeroStream(t *testing.T) {
	bits, err := mustReady(t, zeroKey, zeroIv).Generate(128)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(bits, []byte{1}) {
		t.Error(`all-zero key and iv produced an all-zero keystream`)
	}
}

/*
	Flipping one key bit must flip a substantial fraction of the early
	keystream, neither none of it nor all of it. A broken tap index tends
	to collapse the cipher into a near-linear map, which this catches.
*/
func TestKeyBitAvalanche(t *testing.T) {
	const sample = 512
	base, err := mustReady(t, zeroKey, zeroIv).Generate(sample)
	if err != nil {
		t.Fatal(err)
	}
	flippedKey := make([]byte, KeySize)
	flippedKey[0] ^= 0x01
	flipped, err := mustReady(t, flippedKey, zeroIv).Generate(sample)
	if err != nil {
		t.Fatal(err)
	}
	diff := 0
	for i := range base {
		if base[i] != flipped[i] {
			diff++
		}
	}
	log.Println(`avalanche: differing bits out of `, sample, `: `, diff)
	if diff < sample/4 || diff > 3*sample/4 {
		t.Errorf(`avalanche out of range: %d of %d bits differ`, diff, sample)
	}
}

func TestConstructionContract(t *testing.T) {
	if _, err := New(make([]byte, 9), zeroIv); !errors.Is(err, ErrInvalidKeyLength) {
		t.Error(`9-byte key accepted, err: `, err)
	}
	if _, err := New(make([]byte, 11), zeroIv); !errors.Is(err, ErrInvalidKeyLength) {
		t.Error(`11-byte key accepted, err: `, err)
	}
	if _, err := New(zeroKey, make([]byte, 9)); !errors.Is(err, ErrInvalidIVLength) {
		t.Error(`9-byte iv accepted, err: `, err)
	}
	if _, err := New(zeroKey, nil); !errors.Is(err, ErrInvalidIVLength) {
		t.Error(`nil iv accepted, err: `, err)
	}
}

func TestStateMachineContract(t *testing.T) {
	cipher, err := New(zeroKey, zeroIv)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = cipher.NextBit(); !errors.Is(err, ErrStateNotWarmedUp) {
		t.Error(`NextBit on a loaded state passed, err: `, err)
	}
	if _, err = cipher.Generate(8); !errors.Is(err, ErrStateNotWarmedUp) {
		t.Error(`Generate on a loaded state passed, err: `, err)
	}
	if err = cipher.Keystream(make([]byte, 1)); !errors.Is(err, ErrStateNotWarmedUp) {
		t.Error(`Keystream on a loaded state passed, err: `, err)
	}
	if err = cipher.WarmUp(); err != nil {
		t.Fatal(err)
	}
	if err = cipher.WarmUp(); !errors.Is(err, ErrAlreadyWarmedUp) {
		t.Error(`second WarmUp passed, err: `, err)
	}
	if err = (&Cipher{}).WarmUp(); !errors.Is(err, ErrStateNotLoaded) {
		t.Error(`WarmUp on a zero-value state passed, err: `, err)
	}
}

func TestXORKeyStreamPanicsBeforeWarmUp(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error(`XORKeyStream on a loaded state did not panic`)
		}
	}()
	cipher, err := New(zeroKey, zeroIv)
	if err != nil {
		t.Fatal(err)
	}
	cipher.XORKeyStream(make([]byte, 4), make([]byte, 4))
}

func TestXORKeyStreamRoundtrip(t *testing.T) {
	key := utils.MustHexDecode(`0123456789abcdef1234`)
	iv := utils.MustHexDecode(`0123456789abcdef1234`)
	msg := []byte(`I am the storm that is approaching`)

	ciphertext := make([]byte, len(msg))
	mustReady(t, key, iv).XORKeyStream(ciphertext, msg)
	if bytes.Equal(ciphertext, msg) {
		t.Error(`ciphertext equals plaintext`)
	}
	recovered := make([]byte, len(msg))
	mustReady(t, key, iv).XORKeyStream(recovered, ciphertext)
	if same, why := utils.CompareByteSliceEqualOrNot(recovered, msg); !same {
		t.Error(`decryption failed: `, why)
	}
}

/*
	A clone taken at a checkpoint must continue with the identical
	keystream while staying fully independent of the original.
*/
func TestCloneCheckpoint(t *testing.T) {
	original := mustReady(t, zeroKey, zeroIv)
	if _, err := original.Generate(100); err != nil {
		t.Fatal(err)
	}

	checkpoint := original.Clone()
	fromOriginal, err := original.Generate(64)
	if err != nil {
		t.Fatal(err)
	}
	fromClone, err := checkpoint.Generate(64)
	if err != nil {
		t.Fatal(err)
	}
	if same, why := utils.CompareByteSliceEqualOrNot(fromOriginal, fromClone); !same {
		t.Error(`clone diverged from checkpoint: `, why)
	}

	// Draining the original further must leave the clone untouched.
	if _, err = original.Generate(37); err != nil {
		t.Fatal(err)
	}
	again := checkpoint.Clone()
	a, _ := checkpoint.Generate(64)
	b, _ := again.Generate(64)
	if same, why := utils.CompareByteSliceEqualOrNot(a, b); !same {
		t.Error(`second clone diverged: `, why)
	}
}
