// Package ioutil provides the thin, non-algorithmic file I/O collaborators
// the assembler core depends on: reading a source file as a list of lines,
// and writing text atomically. Neither has any interesting logic; they
// exist so the core packages never touch os.* directly.
package ioutil

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines reads path and returns its content split into lines. Both LF
// and CRLF line endings are accepted; a trailing '\r' is trimmed from every
// line before any other component sees it.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}
	return lines, nil
}

// WriteText writes lines to path, one per line, terminated with '\n'.
// The file is written to a temporary path in the same directory and
// renamed into place only once every line has been written successfully,
// so a failing write never leaves a partial file at path.
func WriteText(path string, lines []string) (err error) {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", tmp)
	}

	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err = w.WriteString(line); err != nil {
			f.Close()
			return errors.Wrapf(err, "write failed for %s", path)
		}
		if _, err = w.WriteString("\n"); err != nil {
			f.Close()
			return errors.Wrapf(err, "write failed for %s", path)
		}
	}

	if err = w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write failed for %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "write failed for %s", path)
	}

	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "cannot finalize %s", path)
	}
	return nil
}

// Remove deletes path if it exists. Missing files are not an error.
func Remove(path string) {
	os.Remove(path)
}
