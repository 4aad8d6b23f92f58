// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package utils

import (
	"encoding/hex"
	"fmt"
	"log"
)

/*
compare whether two byte slices are the same.

	return true, `ok` if two byteSlices are equal, otherwise return false with the reason.
*/
func CompareByteSliceEqualOrNot(a []byte, b []byte) (bool, string) {
	lena, lenb := len(a), len(b)
	if lena != lenb {
		return false, fmt.Sprintf(`unequal: differentLen found:(%d,%d)`, lena, lenb)
	}
	for idx, val := range a {
		if val != b[idx] {
			return false, fmt.Sprintf(`unequal: differentVal found at:%d`, idx)
		}
	}
	return true, `ok`
}

// print byte slice as lowercase hex via log for test diagnostics.
func BytesHexForm(b []byte) {
	log.Println(hex.EncodeToString(b))
}

// MustHexDecode is for fixed literals in tests and fixtures; a bad
// literal is a bug, not an input error.
func MustHexDecode(s string) []byte {
	res, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return res
}
