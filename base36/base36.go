package base36

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	Digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base   = len(Digits)
)

// ErrNotNumeral is returned by Decode when the token contains anything outside of the
// lowercase alphabet, or is empty. Callers treat this as a non-match.
var ErrNotNumeral = errors.New("not a base36 numeral")

var bigBase = big.NewInt(int64(Base))

// Encode returns the token for n. Encode panics if n is negative as an offset within a
// range can never be negative and a caller passing one has a bug.
func Encode(n *big.Int) string {
	if n.Sign() < 0 {
		panic("base36.Encode() called with a negative offset")
	}
	if n.Sign() == 0 {
		return Digits[:1]
	}

	var b []byte
	q := new(big.Int).Set(n)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigBase, r)
		b = append(b, Digits[r.Int64()])
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 { // Most significant first
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// Decode is the inverse of Encode. Only the lowercase alphabet is accepted; uppercase
// letters are as invalid as punctuation. Leading zeroes are tolerated.
func Decode(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty token", ErrNotNumeral)
	}

	n := new(big.Int)
	d := new(big.Int)
	for ix := 0; ix < len(s); ix++ {
		v := digitValue(s[ix])
		if v < 0 {
			return nil, fmt.Errorf("%w: '%s'", ErrNotNumeral, s)
		}
		n.Mul(n, bigBase)
		n.Add(n, d.SetInt64(int64(v)))
	}

	return n, nil
}

// digitValue returns the position of c in Digits or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}

	return -1
}
