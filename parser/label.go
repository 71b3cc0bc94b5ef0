package parser

import (
	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
)

// validateLabel checks name against the label rules (spec §4.2): it must
// begin with an ASCII letter, contain only letters and digits, be 1..30
// characters long, and not collide with a reserved name. Character-rule
// violations are reported as IllegalLabel; length and reserved-name
// violations are reported as InvalidLabel.
func validateLabel(pos errs.Position, name string) error {
	if len(name) == 0 {
		return errs.Newf(pos, errs.IllegalLabel, "empty label")
	}

	if !isASCIILetter(name[0]) {
		return errs.Newf(pos, errs.IllegalLabel, "label %q must begin with a letter", name)
	}

	for i := 1; i < len(name); i++ {
		if !isASCIILetter(name[i]) && !isASCIIDigit(name[i]) {
			return errs.Newf(pos, errs.IllegalLabel, "label %q contains illegal characters", name)
		}
	}

	if len(name) > arch.MaxLabelLen {
		return errs.Newf(pos, errs.InvalidLabel, "label %q exceeds %d characters", name, arch.MaxLabelLen)
	}

	if arch.IsReserved(name) {
		return errs.Newf(pos, errs.InvalidLabel, "label %q is a reserved name", name)
	}

	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
