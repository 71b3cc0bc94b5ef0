package parser

import (
	"strings"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
)

// parseOperand parses a single comma-separated operand field (already
// whitespace-trimmed) into its tagged addressing-mode representation.
func parseOperand(pos errs.Position, field string) (Operand, error) {
	if field == "" {
		return Operand{}, errs.New(pos, errs.ExpectedOperand)
	}

	if field[0] == '#' {
		n, ok := parseSignedInt(field[1:])
		if !ok {
			return Operand{}, errs.Newf(pos, errs.InvalidNumberFormat, "invalid immediate value %q", field)
		}
		return Operand{Kind: arch.Immediate, Immediate: n}, nil
	}

	if d, ok := arch.RegisterDigit(field); ok {
		if d < 0 || d > 7 {
			return Operand{}, errs.Newf(pos, errs.InvalidRegister, "invalid register %q", field)
		}
		return Operand{Kind: arch.RegisterDirect, Reg: d}, nil
	}

	if idx := strings.IndexByte(field, '['); idx >= 0 {
		return parseMatrixOperand(pos, field, idx)
	}

	if err := validateLabel(pos, field); err != nil {
		return Operand{}, err
	}
	return Operand{Kind: arch.Direct, Label: field}, nil
}

// parseMatrixOperand parses "LABEL[rX][rY]" with brackets required to be
// adjacent (no whitespace between them; see spec §9 open question).
func parseMatrixOperand(pos errs.Position, field string, bracket int) (Operand, error) {
	base := field[:bracket]
	if err := validateLabel(pos, base); err != nil {
		return Operand{}, err
	}

	rest := field[bracket:]

	close1 := strings.IndexByte(rest, ']')
	if close1 < 0 {
		return Operand{}, errs.New(pos, errs.InvalidOperandSyntax)
	}
	row := rest[1:close1]

	rest = rest[close1+1:]
	if len(rest) == 0 || rest[0] != '[' {
		return Operand{}, errs.New(pos, errs.InvalidOperandSyntax)
	}

	close2 := strings.IndexByte(rest, ']')
	if close2 < 0 {
		return Operand{}, errs.New(pos, errs.InvalidOperandSyntax)
	}
	col := rest[1:close2]

	if close2 != len(rest)-1 {
		return Operand{}, errs.New(pos, errs.TrailingCharacters)
	}

	rowReg, err := parseMatrixRegister(pos, row)
	if err != nil {
		return Operand{}, err
	}
	colReg, err := parseMatrixRegister(pos, col)
	if err != nil {
		return Operand{}, err
	}

	return Operand{Kind: arch.MatrixAccess, Label: base, RowReg: rowReg, ColReg: colReg}, nil
}

func parseMatrixRegister(pos errs.Position, s string) (int, error) {
	d, ok := arch.RegisterDigit(s)
	if !ok {
		return 0, errs.Newf(pos, errs.InvalidOperandSyntax, "expected register inside matrix brackets, got %q", s)
	}
	if d < 0 || d > 7 {
		return 0, errs.Newf(pos, errs.InvalidRegister, "invalid register %q", s)
	}
	return d, nil
}

// splitOperandFields splits a comma-separated operand list, rejecting
// leading, trailing or doubled commas, which is a malformed statement
// rather than an empty-operand condition.
func splitOperandFields(pos errs.Position, body string) ([]string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	if body[0] == ',' || body[len(body)-1] == ',' {
		return nil, errs.New(pos, errs.InvalidOperandSyntax)
	}

	raw := strings.Split(body, ",")
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		trimmed := strings.TrimSpace(f)
		if trimmed == "" {
			return nil, errs.New(pos, errs.InvalidOperandSyntax)
		}
		fields = append(fields, trimmed)
	}
	return fields, nil
}
