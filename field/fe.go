package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// Element represents an element of the field GF(2^255-19).
//
// This type works similarly to [filippo.io/edwards25519/field.Element],
// and all arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l[0] + t.l[1]*2^16 + t.l[2]*2^32 + ... + t.l[15]*2^240
	//
	// Limbs are signed and redundant: Add and Subtract may leave them
	// outside [0, 2^16) until the next carry pass. Limb magnitudes must
	// stay below 2^26 going into Multiply so that the 16-term convolution
	// and the 38x fold-back fit in int64. SetBytes produces limbs below
	// 2^16 and Multiply re-normalizes its result, so chains of a few
	// Add/Subtract between multiplications stay well inside that bound.
	l [16]int64
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted. Note that this is laxer than specified by RFC 8032, but
// consistent with most Ed25519 implementations.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field25519: invalid field element input size")
	}

	for i := range v.l {
		v.l[i] = int64(binary.LittleEndian.Uint16(x[2*i:]))
	}
	v.l[15] &= 0x7fff

	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

// FillBytes sets buf to the canonical 32-byte little-endian encoding of v,
// and returns buf. If the value of v doesn't fit in buf, FillBytes will panic.
func (v *Element) FillBytes(buf []byte) []byte {
	v.bytes((*[32]byte)(buf))
	return buf
}

func (v *Element) bytes(out *[32]byte) []byte {
	t := *v
	t.carry()
	t.carry()
	t.carry()

	// Two rounds of conditional subtraction of p = 2^255-19 bring t into
	// [0, p): after the three carry passes t can still exceed p by almost
	// p, so one round only collapses [p, 2p). Each round subtracts the
	// limb decomposition of p (0xffed, fourteen 0xffff, 0x7fff) with a
	// running borrow and keeps the difference via Swap exactly when no
	// borrow came out of the top limb, so the selection is branchless.
	var m Element
	for _i := 0; _i < 2; _i++ {
		m.l[0] = t.l[0] - 0xffed
		for i := 1; i < 15; i++ {
			m.l[i] = t.l[i] - 0xffff - ((m.l[i-1] >> 16) & 1)
			m.l[i-1] &= 0xffff
		}
		m.l[15] = t.l[15] - 0x7fff - ((m.l[14] >> 16) & 1)
		borrow := (m.l[15] >> 16) & 1
		m.l[14] &= 0xffff
		t.Swap(&m, int(1-borrow))
	}

	for i := range t.l {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(t.l[i]))
	}
	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	su, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(su, sv)
}

// mask64Bits returns an all-ones limb if cond is 1, and 0 otherwise.
func mask64Bits(cond int) int64 { return ^(int64(cond) - 1) }

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
//
// Swap never branches on cond or on element values: the exchange is a
// mask-and-xor over every limb pair, so callers may key it on a secret bit.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	for i := range v.l {
		t := m & (v.l[i] ^ u.l[i])
		v.l[i] ^= t
		u.l[i] ^= t
	}
}

var feZero = &Element{}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{l: [16]int64{1}}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Add sets v = x + y, and returns v.
//
// The sum is left in redundant form; the next Multiply or Bytes normalizes it.
func (v *Element) Add(x, y *Element) *Element {
	for i := range v.l {
		v.l[i] = x.l[i] + y.l[i]
	}
	return v
}

// Subtract sets v = a - b, and returns v.
//
// Limbs of the difference may go negative; they are resolved by the next
// carry pass, which propagates negative carries.
func (v *Element) Subtract(a, b *Element) *Element {
	for i := range v.l {
		v.l[i] = a.l[i] - b.l[i]
	}
	return v
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	var product [32]int64
	for i := range x.l {
		for j := range y.l {
			product[i+j] += x.l[i] * y.l[j]
		}
	}

	// 2^256 = 38 (mod p), so the high half folds into the low half scaled
	// by 38. The low half's top limb receives no fold-back term:
	// product[31] is never written, the largest convolution index is 30.
	for i := 0; i < 15; i++ {
		product[i] += 38 * product[i+16]
	}

	copy(v.l[:], product[:16])
	// The fold-back can leave limbs a single ripple cannot settle.
	v.carry()
	v.carry()
	return v
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is exponentiation with exponent p - 2 = 2^255 - 21 per
	// Fermat's little theorem. Every bit of the exponent is 1 except bits
	// 2 and 4, so a plain square-and-multiply loop skips the multiply at
	// exactly those two positions. Starting the accumulator at z instead
	// of 1 absorbs the iteration for bit 254.
	zz := *z
	t := zz
	for i := 253; i >= 0; i-- {
		t.Multiply(&t, &t)
		if i != 2 && i != 4 {
			t.Multiply(&t, &zz)
		}
	}
	*v = t
	return v
}

// carry runs one left-to-right normalization pass: each limb's overflow
// beyond 16 bits moves to the next limb, and the top limb's overflow wraps
// around to limb 0 scaled by 38, the positional weight of 2^256 mod p. The
// shift is arithmetic, so transiently negative limbs propagate a negative
// carry.
func (v *Element) carry() {
	for i := range v.l {
		c := v.l[i] >> 16
		v.l[i] -= c << 16
		if i < 15 {
			v.l[i+1] += c
		} else {
			v.l[0] += 38 * c
		}
	}
}
