// Package pathlist reads the candidate path list handed over by a hook runner.
//
// Paths arrive either as command-line arguments or on piped stdin, one per
// line or NUL-separated (git's -z convention, safe for any file name).
package pathlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Read splits r into paths. With nul set entries are NUL-separated,
// otherwise newline-separated with trailing CR stripped. Empty entries are
// dropped; order is preserved.
func Read(r io.Reader, nul bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if nul {
		sc.Split(scanNUL)
	}

	var paths []string
	for sc.Scan() {
		p := sc.Text()
		if !nul {
			p = strings.TrimSuffix(p, "\r")
		}
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read paths: %w", err)
	}
	return paths, nil
}

// scanNUL is a bufio.SplitFunc yielding NUL-terminated tokens.
func scanNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// StdinIsPiped reports whether stdin is a pipe or file rather than a terminal.
func StdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// FromArgsOrStdin returns args when given. Otherwise it reads stdin, but only
// when stdin is piped so an interactive invocation never blocks.
func FromArgsOrStdin(args []string, stdin io.Reader, piped, nul bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if !piped {
		return nil, nil
	}
	return Read(stdin, nul)
}
