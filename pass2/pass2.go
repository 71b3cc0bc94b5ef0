// Package pass2 implements the assembler's second pass (spec §4.5): given
// the first pass's completed symbol table and the already-parsed line
// sequence, it renders the final code and data images, resolves every
// Direct and MatrixAccess operand against the symbol table, and collects
// the entry and externals tables for the object writer.
package pass2

import (
	"sort"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
	"github.com/tenbit-asm/assembler/obj"
	"github.com/tenbit-asm/assembler/pass1"
	"github.com/tenbit-asm/assembler/parser"
	"github.com/tenbit-asm/assembler/symtab"
)

// Run encodes res, the first pass's result for file, into the final
// assembled image. It accumulates one UndefinedSymbolUsed diagnostic per
// unresolved operand rather than stopping at the first one.
func Run(file string, res *pass1.Result) (obj.Image, errs.ErrorSet) {
	var (
		code    []obj.Word
		data    []obj.Word
		externs []obj.SymbolRef
		errSet  errs.ErrorSet
	)

	ic := 0
	for _, ln := range res.Lines {
		pos := errs.Position{File: file, Line: ln.LineNo}
		pl := ln.Parsed

		switch pl.Kind {
		case parser.OperationLine:
			addr := arch.Base + ic
			words, ext := encodeInstruction(pos, addr, pl, res.Symbols, &errSet)
			code = append(code, words...)
			externs = append(externs, ext...)
			ic += len(words)

		case parser.DirectiveLine:
			data = append(data, encodeDirectiveWords(pl.Directive)...)
		}
	}

	var entries []obj.SymbolRef
	res.Symbols.Each(func(sym *symtab.Symbol) {
		if sym.Flags.Has(symtab.Entry) {
			entries = append(entries, obj.SymbolRef{Name: sym.Name, Address: sym.Address})
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Address < entries[j].Address })

	return obj.Image{Code: code, Data: data, Entries: entries, Externals: externs}, errSet
}

// encodeDirectiveWords renders one data-bearing directive's words. Data
// values, matrix cells and string characters are each packed with packWord
// (shifted left past the ARE field, ARE=A, truncated to 10 bits); a string
// is one word per character plus a trailing zero terminator word.
func encodeDirectiveWords(d *parser.Directive) []obj.Word {
	switch d.Kind {
	case parser.Data:
		words := make([]obj.Word, len(d.Values))
		for i, v := range d.Values {
			words[i] = packWord(v, arch.A)
		}
		return words

	case parser.StringLit:
		words := make([]obj.Word, len(d.Text)+1)
		for i := 0; i < len(d.Text); i++ {
			words[i] = packWord(int(d.Text[i]), arch.A)
		}
		words[len(d.Text)] = packWord(0, arch.A)
		return words

	case parser.Mat:
		words := make([]obj.Word, len(d.Cells))
		for i, v := range d.Cells {
			words[i] = packWord(v, arch.A)
		}
		return words

	default:
		return nil
	}
}
