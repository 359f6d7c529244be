package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadInteger indicates a field that does not parse as a base-10 integer.
var ErrBadInteger = errors.New("input: bad integer")

// ReadLines reads the file at path; see Lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Lines(f)
}

// Lines returns every line of r with line endings (including "\r") removed.
// Trailing blank lines are dropped; interior blank lines are kept.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// Chunked splits lines into groups separated by one or more blank lines.
// Empty groups are never returned.
func Chunked(lines []string) [][]string {
	var (
		out   [][]string
		chunk []string
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(chunk) > 0 {
				out = append(out, chunk)
				chunk = nil
			}
			continue
		}
		chunk = append(chunk, l)
	}
	if len(chunk) > 0 {
		out = append(out, chunk)
	}

	return out
}

// Ints splits s on sep and parses every non-empty field as an int.
// An empty sep splits on runs of whitespace.
func Ints(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInteger, f)
		}
		out = append(out, n)
	}

	return out, nil
}
