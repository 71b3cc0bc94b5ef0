package obj

import (
	"fmt"

	"github.com/tenbit-asm/assembler/ioutil"
)

// Word is one assembled 10-bit machine word, held in the low 10 bits of a
// wider container so the value is always non-negative.
type Word uint16

// Image is the full assembled output for one source file: the code and
// data words in image order, plus the entry and external-reference tables
// pass2 accumulated while encoding.
type Image struct {
	Code []Word
	Data []Word

	Entries   []SymbolRef
	Externals []SymbolRef
}

// SymbolRef names one row of the entry or externals file: a symbol name and
// the absolute address it was recorded at.
type SymbolRef struct {
	Name    string
	Address int
}

// WriteObject writes the object file: a header line giving the code and
// data lengths, followed by one "<address>\t<word>" line per word, code
// words first, addresses continuing upward across the code/data boundary.
func WriteObject(path string, img Image, baseAddress int) error {
	lines := make([]string, 0, len(img.Code)+len(img.Data)+1)
	lines = append(lines, fmt.Sprintf("%s %s",
		EncodeBase4(len(img.Code), 3),
		EncodeBase4(len(img.Data), 2)))

	addr := baseAddress
	for _, w := range img.Code {
		lines = append(lines, formatWordLine(addr, w))
		addr++
	}
	for _, w := range img.Data {
		lines = append(lines, formatWordLine(addr, w))
		addr++
	}

	return ioutil.WriteText(path, lines)
}

func formatWordLine(addr int, w Word) string {
	return fmt.Sprintf("%s\t%s", EncodeBase4(addr, 4), EncodeBase4(int(w), 5))
}

// WriteEntries writes the entry file, one "<name>\t<address>" line per
// entry symbol. It writes nothing, and removes any stale file at path, when
// refs is empty: a program with no .entry declarations has no entry file.
func WriteEntries(path string, refs []SymbolRef) error {
	return writeSymbolRefs(path, refs)
}

// WriteExternals writes the externals file, one "<name>\t<address>" line
// per place an external symbol was actually used. It writes nothing, and
// removes any stale file at path, when refs is empty.
func WriteExternals(path string, refs []SymbolRef) error {
	return writeSymbolRefs(path, refs)
}

func writeSymbolRefs(path string, refs []SymbolRef) error {
	if len(refs) == 0 {
		ioutil.Remove(path)
		return nil
	}

	lines := make([]string, 0, len(refs))
	for _, r := range refs {
		lines = append(lines, fmt.Sprintf("%s\t%s", r.Name, EncodeBase4(r.Address, 4)))
	}
	return ioutil.WriteText(path, lines)
}
