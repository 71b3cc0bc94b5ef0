package parser

import (
	"strings"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
)

// ParseLine converts one line of expanded source into a ParsedLine, or
// returns a single diagnostic identifying the first rule it violates.
func ParseLine(file string, lineNo int, raw string) (*ParsedLine, error) {
	pos := errs.Position{File: file, Line: lineNo}

	if len(raw) > arch.MaxSourceLine {
		return nil, errs.Newf(pos, errs.LineTooLong, "line exceeds %d characters", arch.MaxSourceLine)
	}

	line := stripComment(raw)
	line = strings.TrimSpace(line)
	if line == "" {
		return &ParsedLine{Kind: EmptyOrComment}, nil
	}

	var (
		label    string
		hasLabel bool
	)

	firstTok, rest := splitFirstToken(line)
	if strings.HasSuffix(firstTok, ":") {
		label = firstTok[:len(firstTok)-1]
		if err := validateLabel(pos, label); err != nil {
			return nil, err
		}
		hasLabel = true

		rest = strings.TrimSpace(rest)
		if rest == "" {
			return nil, errs.Newf(pos, errs.UnknownCommandName, "label %q has no statement", label)
		}
		line = rest
	}

	name, body := splitFirstToken(line)

	if strings.HasPrefix(name, ".") {
		if !arch.IsDirective(name) {
			return nil, errs.Newf(pos, errs.InvalidDirective, "unknown directive %q", name)
		}
		dir, err := parseDirective(pos, name, body)
		if err != nil {
			return nil, err
		}
		return &ParsedLine{Kind: DirectiveLine, HasLabel: hasLabel, Label: label, Directive: dir}, nil
	}

	op, ok := arch.Lookup(name)
	if !ok {
		return nil, errs.Newf(pos, errs.UnknownCommandName, "unknown command %q", name)
	}

	operands, err := parseOperands(pos, op, body)
	if err != nil {
		return nil, err
	}

	return &ParsedLine{
		Kind:     OperationLine,
		HasLabel: hasLabel,
		Label:    label,
		Opcode:   op,
		Operands: operands,
	}, nil
}

// parseOperands parses and validates the operand list for op from body.
func parseOperands(pos errs.Position, op arch.Opcode, body string) ([]Operand, error) {
	fields, err := splitOperandFields(pos, body)
	if err != nil {
		return nil, err
	}

	if len(fields) > 2 {
		return nil, errs.New(pos, errs.TooManyOperands)
	}

	required := arch.OperandCount(op)
	if len(fields) != required {
		return nil, errs.Newf(pos, errs.InvalidOperandCountForCommand, "%v requires %d operand(s), got %d", op, required, len(fields))
	}

	operands := make([]Operand, 0, len(fields))
	for _, f := range fields {
		o, err := parseOperand(pos, f)
		if err != nil {
			return nil, err
		}
		operands = append(operands, o)
	}

	switch len(operands) {
	case 2:
		if !arch.AllowsSource(op, operands[0].Kind) {
			return nil, errs.Newf(pos, errs.InvalidAddressingMode, "%v does not allow that source addressing mode", op)
		}
		if !arch.AllowsDest(op, operands[1].Kind) {
			return nil, errs.Newf(pos, errs.InvalidAddressingMode, "%v does not allow that destination addressing mode", op)
		}
	case 1:
		if !arch.AllowsDest(op, operands[0].Kind) {
			return nil, errs.Newf(pos, errs.InvalidAddressingMode, "%v does not allow that addressing mode", op)
		}
	}

	return operands, nil
}

// stripComment removes a trailing ';' comment, if any.
func stripComment(line string) string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// splitFirstToken splits s on its first run of whitespace, returning the
// leading token and the (untrimmed) remainder.
func splitFirstToken(s string) (string, string) {
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
