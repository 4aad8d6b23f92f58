// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>
package trivium

/*
	One nonlinear feedback shift register of the cipher, at most 128 bits
	wide. Position 1 is the youngest bit (the insertion end), position
	`width` the oldest. The two-word packing keeps the 93/84/111-bit
	widths structurally bounded instead of run-time checked.
*/
type register struct {
	lo, hi uint64
	width  uint
}

// bit returns the bit at 1-indexed position i of the register.
func (r *register) bit(i uint) uint64 {
	if i <= 64 {
		return (r.lo >> (i - 1)) & 1
	}
	return (r.hi >> (i - 65)) & 1
}

// set writes b (0 or 1) at 1-indexed position i. Only used while loading.
func (r *register) set(i uint, b uint64) {
	if i <= 64 {
		r.lo |= b << (i - 1)
		return
	}
	r.hi |= b << (i - 65)
}

/*
	shiftIn moves every bit one position toward the old end, drops the
	former bit `width` and installs b as the new position 1.
*/
func (r *register) shiftIn(b uint64) {
	r.hi = ((r.hi << 1) | (r.lo >> 63)) & (1<<(r.width-64) - 1)
	r.lo = (r.lo << 1) | b
}
