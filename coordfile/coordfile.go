/*
Package coordfile reads and writes flat airfoil coordinate files.

A coordinate file holds one row per line, with fields separated by arbitrary
whitespace: either "x y" or "x y z". On reading, lines without digits and
lines with words in them (headers, captions, footers) are skipped, so the
rows of a Series do not correspond 1:1 to the lines of the file. On writing,
z is always 0.0, which is what CAD tools expect for a planar curve.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coordfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'coordfile'
func tracer() tracing.Trace {
	return tracing.Select("coordfile")
}

// ErrMalformedRow indicates a data row which is not 2 or 3 numbers.
var ErrMalformedRow = errors.New("coordfile: malformed row")

// RowError reports a malformed row and its position in the input.
type RowError struct {
	Line   int    // 1-based line number
	Text   string // the line as read
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: line %d %q: %s", ErrMalformedRow, e.Line, e.Text, e.Reason)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

// decimal matches a number in plain or exponent notation, e.g. "-0.5", "1e-05".
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsData decides whether a line carries coordinates. A line without any digit
// is not data. Neither is a line with a letter in one of its fields, unless
// the field is a decimal number in exponent notation (as in "1e-05").
// Words like "nan" or "inf" make a line non-data.
func IsData(line string) bool {
	if !strings.ContainsFunc(line, unicode.IsDigit) {
		return false
	}
	for _, f := range strings.Fields(line) {
		if !strings.ContainsFunc(f, unicode.IsLetter) {
			continue
		}
		if !decimal.MatchString(f) {
			return false
		}
	}
	return true
}

// ParseRow converts the fields of a data row into a pair. A z-field is
// parsed for validity, then dropped.
func ParseRow(fields []string) (airfoil.Pair, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return airfoil.Origin, fmt.Errorf("expected 2 or 3 fields, got %d", len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return airfoil.Origin, fmt.Errorf("field %d %q is not a number", i+1, f)
		}
		if !airfoil.Finite(n) {
			return airfoil.Origin, fmt.Errorf("field %d %q is not finite", i+1, f)
		}
		v[i] = n
	}
	return airfoil.P(v[0], v[1]), nil
}

// Read parses coordinate rows from r, skipping non-data lines.
func Read(r io.Reader) (airfoil.Series, error) {
	var s airfoil.Series
	scanner := bufio.NewScanner(r)
	line, skipped := 0, 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !IsData(text) {
			skipped++
			continue
		}
		p, err := ParseRow(strings.Fields(text))
		if err != nil {
			return nil, &RowError{Line: line, Text: text, Reason: err.Error()}
		}
		s = append(s, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("coordfile: reading line %d: %w", line+1, err)
	}
	tracer().Debugf("read %d rows, skipped %d lines", len(s), skipped)
	return s, nil
}

// ReadFile reads the coordinate rows of the file at path.
func ReadFile(path string) (airfoil.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write writes one "x y 0.0" line per row of s.
func Write(w io.Writer, s airfoil.Series) error {
	bw := bufio.NewWriter(w)
	for _, p := range s {
		x, y := p.F()
		if _, err := fmt.Fprintf(bw, "%s %s 0.0\n", formatCoord(x), formatCoord(y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes s to the file at path, replacing an existing file.
func WriteFile(path string, s airfoil.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = Write(f, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("wrote %d rows to %s", len(s), path)
	return nil
}

// formatCoord prints the shortest representation which reads back exactly.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
