package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenbit-asm/assembler/errs"
)

func TestSimpleMacroExpansion(t *testing.T) {
	src := []string{"mcro my_inc", "inc r1", "mcrend", "my_inc"}
	out, err := Expand("t", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"inc r1"}, out)
}

func TestReservedMacroNameFails(t *testing.T) {
	src := []string{"mcro mov", "sub r1, r1", "mcrend"}
	_, err := Expand("t", src)
	require.Error(t, err)

	set := err.(errs.ErrorSet)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, errs.InvalidMacroName, set[0].(*errs.Error).Kind())
}

func TestDuplicateMacroNameFails(t *testing.T) {
	src := []string{
		"mcro a", "inc r1", "mcrend",
		"mcro a", "dec r1", "mcrend",
	}
	_, err := Expand("t", src)
	require.Error(t, err)
}

func TestTokenAfterMcroFails(t *testing.T) {
	src := []string{"mcro a extra", "inc r1", "mcrend"}
	_, err := Expand("t", src)
	require.Error(t, err)
}

func TestTokenAfterMcrendFails(t *testing.T) {
	src := []string{"mcro a", "inc r1", "mcrend extra"}
	_, err := Expand("t", src)
	require.Error(t, err)
}

func TestNestedMacroDefinitionFails(t *testing.T) {
	src := []string{"mcro a", "mcro b", "inc r1", "mcrend", "mcrend"}
	_, err := Expand("t", src)
	require.Error(t, err)
}

func TestBlankAndUnrelatedLinesPassThrough(t *testing.T) {
	src := []string{"", "  ", "mov r1, r2", "stop"}
	out, err := Expand("t", src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestMacroBodyPreservesIndentation(t *testing.T) {
	src := []string{"mcro a", "    inc r1", "mcrend", "a"}
	out, err := Expand("t", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"    inc r1"}, out)
}

func TestIdempotentWithoutMacroDefinitions(t *testing.T) {
	src := []string{"MAIN: mov r1, r2", "stop", "VAL: .data 5"}
	first, err := Expand("t", src)
	require.NoError(t, err)
	second, err := Expand("t", first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
