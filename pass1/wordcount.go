package pass1

import (
	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/parser"
)

// InstrWordCount returns the number of words an instruction with the given
// operands occupies in the code image (spec §4.4): one word for the
// opcode, plus one extra word per Immediate, Direct or RegisterDirect
// operand, two extra words per MatrixAccess operand — except that two
// RegisterDirect operands share a single combined word.
func InstrWordCount(operands []parser.Operand) int {
	n := 1
	for _, o := range operands {
		switch o.Kind {
		case arch.MatrixAccess:
			n += 2
		default:
			n++
		}
	}
	if len(operands) == 2 && operands[0].Kind == arch.RegisterDirect && operands[1].Kind == arch.RegisterDirect {
		n--
	}
	return n
}
