package arch

// NumRegisters is the number of general-purpose registers, r0..r7.
const NumRegisters = 8

// IsRegister reports whether name is a register name, r0 through r7.
func IsRegister(name string) bool {
	return RegisterIndex(name) >= 0
}

// RegisterIndex returns the register index for name, 0..7.
// Returns -1 if name is not a well-formed register name in the valid
// range. Callers that must distinguish "not shaped like a register" from
// "shaped like a register but out of range" should use RegisterDigit.
func RegisterIndex(name string) int {
	n, ok := RegisterDigit(name)
	if !ok || n < 0 || n > 7 {
		return -1
	}
	return n
}

// RegisterDigit parses name as "r<digit>" and returns the digit, regardless
// of whether it falls in the valid 0..7 range. Returns ok=false if name does
// not match the "r<digit>" shape at all.
func RegisterDigit(name string) (int, bool) {
	if len(name) != 2 || name[0] != 'r' {
		return 0, false
	}
	d := name[1]
	if d < '0' || d > '9' {
		return 0, false
	}
	return int(d - '0'), true
}

// RegisterName returns the canonical name for register index n (0..7).
// Returns "" if n is out of range.
func RegisterName(n int) string {
	if n < 0 || n > 7 {
		return ""
	}
	return string([]byte{'r', byte('0' + n)})
}
