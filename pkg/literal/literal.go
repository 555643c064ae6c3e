// Package literal parses numeric literals in several bases into big-endian bytes.
//
// Recognised prefixes, checked in this order:
//   - 0x, 16#        hexadecimal
//   - 0b, 2#         binary
//   - 0o, 8#         octal
//   - leading 0      octal
//   - 10#, none      decimal
//
// Hexadecimal and binary literals keep their written width: "0x001A" is two
// bytes, an odd digit count gains a leading zero nibble and a partial binary
// octet is padded on the left. Octal and decimal literals produce the minimal
// big-endian representation, with zero encoded as a single 0x00 byte.
package literal

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrMalformedLiteral is returned for empty input or digits invalid in the base.
var ErrMalformedLiteral = errors.New("malformed literal")

// Base identifies the radix a literal was written in.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

var prefixes = []struct {
	prefix string
	base   Base
}{
	{"0x", Hexadecimal},
	{"16#", Hexadecimal},
	{"0b", Binary},
	{"2#", Binary},
	{"0o", Octal},
	{"8#", Octal},
	{"10#", Decimal},
}

// Split detects the base of s and returns the digits with the prefix removed.
func Split(s string) (Base, string) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.base, s[len(p.prefix):]
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return Octal, s[1:]
	}
	return Decimal, s
}

// Parse converts a literal to bytes.
func Parse(s string) ([]byte, error) {
	base, digits := Split(s)
	if digits == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrMalformedLiteral, s)
	}

	switch base {
	case Hexadecimal:
		return parseHex(s, digits)
	case Binary:
		return parseBinary(s, digits)
	default:
		return parseInteger(s, digits, int(base))
	}
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) []byte {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func parseHex(s, digits string) ([]byte, error) {
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedLiteral, s)
	}
	return b, nil
}

func parseBinary(s, digits string) ([]byte, error) {
	if pad := len(digits) % 8; pad != 0 {
		digits = strings.Repeat("0", 8-pad) + digits
	}

	out := make([]byte, len(digits)/8)
	for i := 0; i < len(digits); i++ {
		var bit byte
		switch digits[i] {
		case '0':
		case '1':
			bit = 1
		default:
			return nil, fmt.Errorf("%w: %q is not binary", ErrMalformedLiteral, s)
		}
		out[i/8] = out[i/8]<<1 | bit
	}
	return out, nil
}

func parseInteger(s, digits string, base int) ([]byte, error) {
	// SetString would accept a sign and underscores
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not base %d", ErrMalformedLiteral, s, base)
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not base %d", ErrMalformedLiteral, s, base)
	}
	if n.Sign() == 0 {
		return []byte{0x00}, nil
	}
	return n.Bytes(), nil
}
