// Package obj renders an assembled image to the three output files the
// assembler produces per source file (spec §4.5, §6): the object file, the
// entry file and the externals file, each encoded in the base-4 "abcd"
// digit alphabet the target toolchain expects instead of plain decimal or
// hexadecimal.
package obj

import (
	"strings"

	"github.com/pkg/errors"
)

const digitAlphabet = "abcd"

// EncodeBase4 renders n, a non-negative integer, as base-4 digits drawn
// from the 'a'..'d' alphabet, most-significant digit first. The result is
// left-padded with 'a' to at least minDigits characters; a value that
// needs more digits than minDigits is rendered in full rather than
// truncated.
func EncodeBase4(n, minDigits int) string {
	if n == 0 {
		return strings.Repeat("a", maxInt(minDigits, 1))
	}

	var digits []byte
	for n > 0 {
		digits = append(digits, digitAlphabet[n%4])
		n /= 4
	}
	for len(digits) < minDigits {
		digits = append(digits, digitAlphabet[0])
	}
	reverse(digits)
	return string(digits)
}

// DecodeBase4 parses s, a string of 'a'..'d' digits, back into an integer.
func DecodeBase4(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(digitAlphabet, s[i])
		if idx < 0 {
			return 0, errors.Errorf("invalid base-4 digit %q in %q", s[i], s)
		}
		n = n*4 + idx
	}
	return n, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
