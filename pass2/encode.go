package pass2

import (
	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
	"github.com/tenbit-asm/assembler/obj"
	"github.com/tenbit-asm/assembler/parser"
	"github.com/tenbit-asm/assembler/symtab"
)

const wordMask = obj.Word(1<<arch.WordBits - 1)

// packWord combines value, shifted left to make room for the ARE field,
// with are into a single 10-bit word. value is truncated to fit; callers
// that need the raw ARE bits unshifted (register operand words) build them
// by hand instead.
func packWord(value int, are arch.ARE) obj.Word {
	return obj.Word(value<<2)&wordMask | obj.Word(are)
}

func opcodeWord(op arch.Opcode, srcMode, dstMode arch.AddressMode) obj.Word {
	v := (int(op) << 6) | (int(srcMode) << 4) | (int(dstMode) << 2) | int(arch.A)
	return obj.Word(v) & wordMask
}

// encodeInstruction renders one operation line into its code words (spec
// §4.5), along with any externals-file rows the encoding produced.
func encodeInstruction(pos errs.Position, addr int, pl *parser.ParsedLine, tab *symtab.Table, errSet *errs.ErrorSet) ([]obj.Word, []obj.SymbolRef) {
	var srcMode, dstMode arch.AddressMode
	switch len(pl.Operands) {
	case 2:
		srcMode, dstMode = pl.Operands[0].Kind, pl.Operands[1].Kind
	case 1:
		dstMode = pl.Operands[0].Kind
	}

	words := []obj.Word{opcodeWord(pl.Opcode, srcMode, dstMode)}
	var externs []obj.SymbolRef
	cur := addr + 1

	if len(pl.Operands) == 2 && pl.Operands[0].Kind == arch.RegisterDirect && pl.Operands[1].Kind == arch.RegisterDirect {
		v := (pl.Operands[0].Reg << 6) | (pl.Operands[1].Reg << 2) | int(arch.A)
		words = append(words, obj.Word(v)&wordMask)
		return words, externs
	}

	for i, o := range pl.Operands {
		isSource := len(pl.Operands) == 2 && i == 0
		w, ext := encodeOperand(pos, cur, o, isSource, tab, errSet)
		words = append(words, w...)
		cur += len(w)
		externs = append(externs, ext...)
	}

	return words, externs
}

// encodeOperand renders a single operand into its word(s), starting at
// address addr.
func encodeOperand(pos errs.Position, addr int, o parser.Operand, isSource bool, tab *symtab.Table, errSet *errs.ErrorSet) ([]obj.Word, []obj.SymbolRef) {
	switch o.Kind {
	case arch.Immediate:
		return []obj.Word{packWord(o.Immediate, arch.A)}, nil

	case arch.RegisterDirect:
		var v int
		if isSource {
			v = o.Reg << 6
		} else {
			v = o.Reg << 2
		}
		return []obj.Word{obj.Word(v|int(arch.A)) & wordMask}, nil

	case arch.Direct:
		w, ext := encodeLabelWord(pos, addr, o.Label, tab, errSet)
		return []obj.Word{w}, ext

	case arch.MatrixAccess:
		base, ext := encodeLabelWord(pos, addr, o.Label, tab, errSet)
		regWord := obj.Word((o.RowReg<<6)|(o.ColReg<<2)|int(arch.A)) & wordMask
		return []obj.Word{base, regWord}, ext

	default:
		return nil, nil
	}
}

// encodeLabelWord resolves a Direct or MatrixAccess base label against the
// symbol table, producing the absolute/relocatable word and, if the symbol
// is external, the externals-file row recording where it was used.
func encodeLabelWord(pos errs.Position, addr int, label string, tab *symtab.Table, errSet *errs.ErrorSet) (obj.Word, []obj.SymbolRef) {
	sym, ok := tab.Lookup(label)
	if !ok {
		errSet.Append(errs.Newf(pos, errs.UndefinedSymbolUsed, "undefined symbol %q", label))
		return packWord(0, arch.A), nil
	}
	if sym.Flags.Has(symtab.Extern) {
		return obj.Word(arch.E), []obj.SymbolRef{{Name: label, Address: addr}}
	}
	return packWord(sym.Address, arch.R), nil
}
