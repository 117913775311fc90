package field

import (
	"crypto/subtle"
	"errors"
)

// SetCanonicalBytes sets v to x, where x is the canonical 32-byte
// little-endian encoding of a value in [0, 2^255-19). Unlike SetBytes it
// rejects non-canonical input: if the high bit of the last byte is set, or
// the value is not fully reduced, SetCanonicalBytes returns nil and an
// error, and the receiver is unchanged.
//
// This is an opt-in validating layer; SetBytes remains the default entry
// point with its mask-and-accept behavior.
func (v *Element) SetCanonicalBytes(x []byte) (*Element, error) {
	var t Element
	if _, err := t.SetBytes(x); err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(t.Bytes(), x) != 1 {
		return nil, errors.New("field25519: non-canonical field element encoding")
	}
	return v.Set(&t), nil
}
