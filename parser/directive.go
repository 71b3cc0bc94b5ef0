package parser

import (
	"strconv"
	"strings"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
)

// MaxStringLen is the maximum number of characters a .string literal may
// hold, excluding its surrounding quotes and its implicit zero terminator.
// The reference course material disagrees on this bound across revisions
// (78, 80 and 81 all appear); this implementation fixes it at 78. ParseLine
// rejects any line longer than arch.MaxSourceLine (80) before parsing it,
// and `.string ""` alone takes 10 of those characters, so a string longer
// than 70 characters is reported as LineTooLong before this bound is
// checked. See DESIGN.md.
const MaxStringLen = 78

// parseDirective dispatches on the directive name (including its leading
// dot) and parses body, the remainder of the line after the directive name.
func parseDirective(pos errs.Position, name, body string) (*Directive, error) {
	switch name {
	case arch.DirData:
		return parseDataDirective(pos, body)
	case arch.DirString:
		return parseStringDirective(pos, body)
	case arch.DirMat:
		return parseMatDirective(pos, body)
	case arch.DirEntry:
		return parseSymbolDirective(pos, Entry, body)
	case arch.DirExtern:
		return parseSymbolDirective(pos, Extern, body)
	}
	return nil, errs.Newf(pos, errs.InvalidDirective, "unknown directive %q", name)
}

func parseDataDirective(pos errs.Position, body string) (*Directive, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errs.New(pos, errs.ExpectedOperand)
	}

	fields := strings.Split(body, ",")
	values := make([]int, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, errs.New(pos, errs.ExpectedOperand)
		}
		n, ok := parseSignedInt(f)
		if !ok {
			return nil, errs.Newf(pos, errs.InvalidNumberFormat, "invalid .data value %q", f)
		}
		values = append(values, n)
	}

	if len(values) > arch.MaxDataItems {
		return nil, errs.Newf(pos, errs.DataOverflow, "%d values exceeds the %d item limit", len(values), arch.MaxDataItems)
	}

	return &Directive{Kind: Data, Values: values}, nil
}

func parseStringDirective(pos errs.Position, body string) (*Directive, error) {
	body = strings.TrimSpace(body)
	if len(body) < 2 || body[0] != '"' {
		return nil, errs.New(pos, errs.InvalidStringFormat)
	}

	end := strings.IndexByte(body[1:], '"')
	if end < 0 {
		return nil, errs.New(pos, errs.InvalidStringFormat)
	}
	end++ // index within body, not body[1:]

	text := body[1:end]
	if trailing := strings.TrimSpace(body[end+1:]); trailing != "" {
		return nil, errs.New(pos, errs.TrailingCharacters)
	}

	if len(text) > MaxStringLen {
		return nil, errs.Newf(pos, errs.StringTooLong, "string exceeds %d characters", MaxStringLen)
	}

	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return nil, errs.New(pos, errs.InvalidStringFormat)
		}
	}

	return &Directive{Kind: StringLit, Text: text}, nil
}

func parseMatDirective(pos errs.Position, body string) (*Directive, error) {
	body = strings.TrimSpace(body)

	if len(body) == 0 || body[0] != '[' {
		return nil, errs.New(pos, errs.InvalidMatrixFormat)
	}

	close1 := strings.IndexByte(body, ']')
	if close1 < 0 {
		return nil, errs.New(pos, errs.InvalidMatrixFormat)
	}
	rowsStr := body[1:close1]

	rest := body[close1+1:]
	if len(rest) == 0 || rest[0] != '[' {
		return nil, errs.New(pos, errs.InvalidMatrixFormat)
	}
	close2 := strings.IndexByte(rest, ']')
	if close2 < 0 {
		return nil, errs.New(pos, errs.InvalidMatrixFormat)
	}
	colsStr := rest[1:close2]

	rows, err1 := strconv.Atoi(strings.TrimSpace(rowsStr))
	cols, err2 := strconv.Atoi(strings.TrimSpace(colsStr))
	if err1 != nil || err2 != nil {
		return nil, errs.New(pos, errs.InvalidMatrixFormat)
	}
	if rows < 1 || rows > arch.MaxMatrixDim || cols < 1 || cols > arch.MaxMatrixDim {
		return nil, errs.Newf(pos, errs.InvalidMatrixDimensions, "matrix dimensions [%d][%d] out of range", rows, cols)
	}

	valuesStr := strings.TrimSpace(rest[close2+1:])
	cells := make([]int, rows*cols)

	if valuesStr != "" {
		fields := strings.Split(valuesStr, ",")
		if len(fields) != rows*cols {
			return nil, errs.Newf(pos, errs.InvalidMatrixInitialization, "expected %d values, got %d", rows*cols, len(fields))
		}
		for i, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				return nil, errs.New(pos, errs.InvalidMatrixInitialization)
			}
			n, ok := parseSignedInt(f)
			if !ok {
				return nil, errs.Newf(pos, errs.InvalidNumberFormat, "invalid matrix value %q", f)
			}
			cells[i] = n
		}
	}

	return &Directive{Kind: Mat, Rows: rows, Cols: cols, Cells: cells}, nil
}

func parseSymbolDirective(pos errs.Position, kind DirectiveKind, body string) (*Directive, error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, errs.New(pos, errs.ExpectedOperand)
	}
	if len(fields) > 1 {
		return nil, errs.New(pos, errs.TrailingCharacters)
	}

	name := fields[0]
	if err := validateLabel(pos, name); err != nil {
		return nil, err
	}

	return &Directive{Kind: kind, Name: name}, nil
}
