package parser

import "strconv"

// parseSignedInt parses s as a signed decimal integer with no trailing
// characters (no hex/octal prefixes, no whitespace, no underscores).
// Returns ok=false if s is not a well-formed signed decimal integer.
func parseSignedInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	start := 0
	if s[0] == '+' || s[0] == '-' {
		start = 1
	}
	if start == len(s) {
		return 0, false
	}
	for i := start; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
