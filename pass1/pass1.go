// Package pass1 implements the assembler's first pass (spec §4.4): it
// walks the expanded source a line at a time, builds the symbol table,
// assigns Code and Data addresses, and tallies the final instruction and
// data counters that the second pass and the data-address rebase depend
// on.
package pass1

import (
	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
	"github.com/tenbit-asm/assembler/parser"
	"github.com/tenbit-asm/assembler/symtab"
)

// Line pairs a parsed, non-empty source line with the line number it came
// from, so the second pass can walk the same sequence without reparsing.
type Line struct {
	LineNo int
	Parsed *parser.ParsedLine
}

// Result is everything the first pass produces for one source file.
type Result struct {
	Symbols *symtab.Table
	Lines   []Line
	ICFinal int
	DCFinal int
	Errors  errs.ErrorSet
}

// Run executes the first pass over lines, the already macro-expanded
// source of file. It never stops at the first error: every line is
// parsed and, where possible, accounted for in the address counters, so
// that a single invocation surfaces as many diagnostics as the source
// actually contains.
func Run(file string, lines []string) *Result {
	tab := symtab.New()
	res := &Result{Symbols: tab}

	ic, dc := 0, 0

	for i, raw := range lines {
		lineNo := i + 1
		pos := errs.Position{File: file, Line: lineNo}

		pl, err := parser.ParseLine(file, lineNo, raw)
		if err != nil {
			res.Errors.Append(err)
			continue
		}
		if pl.Kind == parser.EmptyOrComment {
			continue
		}

		switch pl.Kind {
		case parser.OperationLine:
			if pl.HasLabel {
				if !tab.Insert(pl.Label, arch.Base+ic, symtab.Code) {
					res.Errors.Append(classifyConflict(pos, tab, pl.Label, symtab.Code))
				}
			}
			res.Lines = append(res.Lines, Line{LineNo: lineNo, Parsed: pl})
			ic += InstrWordCount(pl.Operands)

		case parser.DirectiveLine:
			d := pl.Directive
			switch d.Kind {
			case parser.Data, parser.StringLit, parser.Mat:
				if pl.HasLabel {
					if !tab.Insert(pl.Label, arch.Base+dc, symtab.Data) {
						res.Errors.Append(classifyConflict(pos, tab, pl.Label, symtab.Data))
					}
				}
				res.Lines = append(res.Lines, Line{LineNo: lineNo, Parsed: pl})
				dc += directiveWordCount(d)

			case parser.Extern:
				if !tab.Insert(d.Name, 0, symtab.Extern) {
					res.Errors.Append(classifyConflict(pos, tab, d.Name, symtab.Extern))
				}

			case parser.Entry:
				if !tab.Insert(d.Name, 0, symtab.Entry) {
					res.Errors.Append(classifyConflict(pos, tab, d.Name, symtab.Entry))
				}
			}
		}
	}

	res.ICFinal = ic
	res.DCFinal = dc
	tab.BumpDataAddresses(ic)

	validateEntries(file, tab, &res.Errors)

	return res
}

// directiveWordCount returns the number of data-image words a data-bearing
// directive occupies.
func directiveWordCount(d *parser.Directive) int {
	switch d.Kind {
	case parser.Data:
		return len(d.Values)
	case parser.StringLit:
		return len(d.Text) + 1 // plus the trailing NUL terminator word.
	case parser.Mat:
		return d.Rows * d.Cols
	default:
		return 0
	}
}

// validateEntries applies the final cross-checks that can only be made once
// every label in the file has been seen: an entry symbol must be defined
// somewhere in this file, and may not also be external.
func validateEntries(file string, tab *symtab.Table, errSet *errs.ErrorSet) {
	tab.Each(func(sym *symtab.Symbol) {
		if !sym.Flags.Has(symtab.Entry) {
			return
		}
		pos := errs.Position{File: file}
		switch {
		case sym.Flags.Has(symtab.Extern):
			errSet.Append(errs.Newf(pos, errs.ExternalSymbolCannotBeEntry, "%q is declared both extern and entry", sym.Name))
		case !sym.Flags.Has(symtab.Code) && !sym.Flags.Has(symtab.Data):
			errSet.Append(errs.Newf(pos, errs.EntrySymbolNotDefined, "entry symbol %q is never defined in this file", sym.Name))
		}
	})
}

// classifyConflict turns a failed symtab.Insert into the specific taxonomy
// Kind its cause corresponds to.
func classifyConflict(pos errs.Position, tab *symtab.Table, name string, adding symtab.Flag) error {
	sym, _ := tab.Lookup(name)
	var existing symtab.Flag
	if sym != nil {
		existing = sym.Flags
	}

	switch {
	case adding.Has(symtab.Entry) && existing.Has(symtab.Entry):
		return errs.Newf(pos, errs.DuplicateEntryDeclaration, "%q is already declared as an entry", name)
	case adding.Has(symtab.Entry) && existing.Has(symtab.Extern), adding.Has(symtab.Extern) && existing.Has(symtab.Entry):
		return errs.Newf(pos, errs.ExternalSymbolCannotBeEntry, "%q cannot be both extern and entry", name)
	default:
		return errs.Newf(pos, errs.DuplicateLabelDefinition, "%q is already defined", name)
	}
}
