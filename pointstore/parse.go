package pointstore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/citysearch/model"
)

// maxLineSize bounds a single source line.
const maxLineSize = 1 << 20

// Parse reads records from r and builds a Registry.
func Parse(r io.Reader) (*Registry, error) {
	return parse(context.Background(), "", r)
}

func parse(ctx context.Context, source string, r io.Reader) (*Registry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	b := NewBuilder()
	line := 0

	for sc.Scan() {
		line++
		name := sc.Text()

		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Kind: SourceUnavailable, Source: source, Line: line, cause: err}
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, scanError(source, line+1, err)
			}
			return nil, &LoadError{Kind: MalformedRecord, Source: source, Line: line, City: name}
		}
		line++

		p, err := parsePoint(sc.Text())
		if err != nil {
			err.Source = source
			err.Line = line
			return nil, err
		}

		b.Add(name, p)
	}

	if err := sc.Err(); err != nil {
		return nil, scanError(source, line+1, err)
	}

	return b.Build(), nil
}

// scanError classifies a scanner failure. An overlong line is a bad record,
// anything else means the source itself failed.
func scanError(source string, line int, err error) *LoadError {
	if errors.Is(err, bufio.ErrTooLong) {
		return &LoadError{Kind: MalformedRecord, Source: source, Line: line, cause: err}
	}
	return &LoadError{Kind: SourceUnavailable, Source: source, Line: line, cause: err}
}

// parsePoint parses a "<x>-<y>" coordinate line.
func parsePoint(text string) (model.Point, *LoadError) {
	xs, ys, ok := splitCoordinates(text)
	if !ok {
		return model.Point{}, &LoadError{Kind: MalformedRecord, Text: text}
	}

	x, err := parseCoordinate(xs)
	if err != nil {
		return model.Point{}, &LoadError{Kind: InvalidCoordinate, Text: text, cause: err}
	}
	y, err := parseCoordinate(ys)
	if err != nil {
		return model.Point{}, &LoadError{Kind: InvalidCoordinate, Text: text, cause: err}
	}

	return model.Pt(x, y), nil
}

// splitCoordinates splits on the first '-' that is not a leading sign and
// not preceded by an exponent marker (e/E, or p/P for hex floats). Both
// halves must be non-empty.
func splitCoordinates(text string) (string, string, bool) {
	s := strings.TrimSpace(text)
	hex := isHexFloat(s)
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		if isExponentMarker(s[i-1], hex) {
			continue
		}
		xs := strings.TrimSpace(s[:i])
		ys := strings.TrimSpace(s[i+1:])
		if xs == "" || ys == "" {
			return "", "", false
		}
		return xs, ys, true
	}
	return "", "", false
}

// isHexFloat reports whether s starts with an optionally signed 0x prefix.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isExponentMarker(c byte, hex bool) bool {
	if hex {
		return c == 'p' || c == 'P'
	}
	return c == 'e' || c == 'E'
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrRange}
	}
	return v, nil
}
