// Package field implements arithmetic modulo 2^255-19.
//
// [Element] type API follows [filippo.io/edwards25519/field.Element].
//
// Internally an element is held in a redundant representation of 16 signed
// 64-bit limbs, each carrying a 16-bit slice of the value in base 2^16, the
// layout used by TweetNaCl. Arithmetic results may temporarily leave limbs
// outside their 16-bit range; [Element.Bytes] always normalizes and produces
// the canonical encoding in [0, 2^255-19).
//
// All operations run in constant time: no instruction sequence or memory
// access pattern depends on element values.
package field
