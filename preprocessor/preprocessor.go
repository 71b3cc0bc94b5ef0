// Package preprocessor implements the whole-file macro expander (spec
// §4.1): it collects "mcro ... mcrend" definitions and substitutes call
// sites with the stored body, verbatim and in order. Macro parameters,
// nested definitions and conditionals are not supported.
package preprocessor

import (
	"strings"

	"github.com/tenbit-asm/assembler/arch"
	"github.com/tenbit-asm/assembler/errs"
)

// macro holds one ordered, verbatim macro body.
type macro struct {
	name string
	body []string
}

// state is the preprocessor's two-state machine (spec §4.1).
type state int

const (
	idle state = iota
	collecting
)

// Expand runs the macro preprocessor over lines from file, returning the
// expanded line sequence. On any error, every accumulated diagnostic is
// returned in an errs.ErrorSet and the returned lines are nil — the caller
// must not write a .am file in that case (spec: "the output file must not
// exist on disk when the function returns").
func Expand(file string, lines []string) ([]string, error) {
	macros := make(map[string]*macro)

	var (
		out     []string
		errSet  errs.ErrorSet
		st      = idle
		current *macro
	)

	for i, line := range lines {
		pos := errs.Position{File: file, Line: i + 1}
		fields := strings.Fields(line)

		switch st {
		case idle:
			if len(fields) > 0 && fields[0] == arch.MacroBegin {
				m, err := beginMacro(pos, fields, macros)
				if err != nil {
					errSet.Append(err)
					continue
				}
				macros[m.name] = m
				current = m
				st = collecting
				continue
			}

			if m := lookupInvocation(fields, macros); m != nil {
				out = append(out, m.body...)
				continue
			}

			out = append(out, line)

		case collecting:
			if len(fields) > 0 && fields[0] == arch.MacroEnd {
				if len(fields) > 1 {
					errSet.Append(errs.New(pos, errs.TokenAfterMacro))
					continue
				}
				st = idle
				current = nil
				continue
			}

			if len(fields) > 0 && (fields[0] == arch.MacroBegin || fields[0] == arch.MacroEnd) {
				errSet.Append(errs.New(pos, errs.InvalidMacroName))
				continue
			}

			current.body = append(current.body, line)
		}
	}

	if err := errSet.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// beginMacro validates a "mcro <name>" line and returns the new, empty macro.
func beginMacro(pos errs.Position, fields []string, macros map[string]*macro) (*macro, error) {
	if len(fields) < 2 {
		return nil, errs.Newf(pos, errs.InvalidMacroName, "missing macro name")
	}
	if len(fields) > 2 {
		return nil, errs.New(pos, errs.TokenAfterMacro)
	}

	name := fields[1]
	if arch.IsReserved(name) {
		return nil, errs.Newf(pos, errs.InvalidMacroName, "macro name %q is reserved", name)
	}
	if _, exists := macros[name]; exists {
		return nil, errs.Newf(pos, errs.InvalidMacroName, "macro %q already defined", name)
	}

	return &macro{name: name}, nil
}

// lookupInvocation returns the macro invoked by fields, or nil if fields do
// not name a known macro or carry trailing tokens.
func lookupInvocation(fields []string, macros map[string]*macro) *macro {
	if len(fields) != 1 {
		return nil
	}
	return macros[fields[0]]
}
