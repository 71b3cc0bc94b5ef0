package obj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenbit-asm/assembler/arch"
)

func TestWriteObjectHeaderAndBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ob")

	img := Image{
		Code: []Word{0b0000000010, 0b0000000110},
		Data: []Word{7},
	}
	require.NoError(t, WriteObject(path, img, arch.Base))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitLines(string(data))

	require.GreaterOrEqual(t, len(lines), 1)
	// header is code-length, data-length in base4 (3 digits, 2 digits).
	assert.Equal(t, EncodeBase4(2, 3)+" "+EncodeBase4(1, 2), lines[0])
	assert.Len(t, lines, 1+len(img.Code)+len(img.Data))
}

func TestWriteEntriesOmittedWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ent")

	require.NoError(t, WriteEntries(path, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteEntriesFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ent")

	require.NoError(t, WriteEntries(path, []SymbolRef{{Name: "MAIN", Address: arch.Base}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitLines(string(data))
	require.Len(t, lines, 1)
	assert.Equal(t, "MAIN\t"+EncodeBase4(arch.Base, 4), lines[0])
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
