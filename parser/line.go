// Package parser converts a single expanded source line into a ParsedLine,
// or a specific error from the shared taxonomy (spec §4.2). It recognizes
// labels, directives and instructions, and validates addressing modes
// against the opcode tables in package arch.
package parser

import "github.com/tenbit-asm/assembler/arch"

// LineKind identifies the shape of a parsed line.
type LineKind int

const (
	EmptyOrComment LineKind = iota
	DirectiveLine
	OperationLine
)

// DirectiveKind identifies the shape of a directive's body.
type DirectiveKind int

const (
	Data DirectiveKind = iota
	StringLit
	Mat
	Entry
	Extern
)

// Directive is the tagged body of a directive line.
type Directive struct {
	Kind DirectiveKind

	Values []int  // Data: signed decimal values.
	Text   string // StringLit: the string's content, unquoted.
	Rows   int    // Mat: row count.
	Cols   int    // Mat: column count.
	Cells  []int  // Mat: row-major cell values, length Rows*Cols.
	Name   string // Entry, Extern: the referenced symbol name.
}

// OperandKind identifies one of the four addressing modes an operand was
// written in.
type OperandKind = arch.AddressMode

// Operand is the tagged variant over the four addressing modes (spec §3).
type Operand struct {
	Kind      OperandKind
	Immediate int    // Immediate: the literal value.
	Label     string // Direct, MatrixAccess: the referenced label.
	RowReg    int    // MatrixAccess: row index register, 0..7.
	ColReg    int    // MatrixAccess: column index register, 0..7.
	Reg       int    // RegisterDirect: register index, 0..7.
}

// ParsedLine is the result of parsing one line of source (spec §3).
type ParsedLine struct {
	Kind LineKind

	HasLabel bool
	Label    string

	Directive *Directive // set when Kind == DirectiveLine

	Opcode   arch.Opcode // set when Kind == OperationLine
	Operands []Operand   // set when Kind == OperationLine, length 0, 1 or 2
}
