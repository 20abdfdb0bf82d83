package pointstore

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/citysearch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := "Tel Aviv\n32.08-34.78\nHaifa\n32.79-34.99\nJerusalem\n31.77-35.21\n"

	reg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"Haifa", "Jerusalem", "Tel Aviv"}, reg.Names())

	p, ok := reg.Lookup("Haifa")
	require.True(t, ok)
	assert.Equal(t, model.Pt(32.79, 34.99), p)

	_, ok = reg.Lookup("haifa")
	assert.False(t, ok, "names are case-sensitive")
}

func TestParse_Verbatim(t *testing.T) {
	reg, err := Parse(strings.NewReader("  Rosh Pina \r\n1-2\r\n"))
	require.NoError(t, err)

	_, ok := reg.Lookup("  Rosh Pina ")
	assert.True(t, ok)
}

func TestParse_Empty(t *testing.T) {
	reg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 0, reg.XIndex().Len())
}

func TestParse_NoTrailingNewline(t *testing.T) {
	reg, err := Parse(strings.NewReader("A\n0-0\nB\n1-0"))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		sentinel error
		kind     Kind
		line     int
		contains string
	}{
		{"OrphanedName", "A\n0-0\nB\n", ErrMalformedRecord, MalformedRecord, 3, "incomplete data for city: B"},
		{"NoDelimiter", "A\n12.5\n", ErrMalformedRecord, MalformedRecord, 2, "12.5"},
		{"EmptyY", "A\n3-\n", ErrMalformedRecord, MalformedRecord, 2, "3-"},
		{"OnlySign", "A\n-\n", ErrMalformedRecord, MalformedRecord, 2, "-"},
		{"EmptyLine", "A\n\n", ErrMalformedRecord, MalformedRecord, 2, "line 2"},
		{"NonNumericX", "A\nabc-4\n", ErrInvalidCoordinate, InvalidCoordinate, 2, "abc-4"},
		{"NonNumericY", "A\n1-2\nB\n3-four\n", ErrInvalidCoordinate, InvalidCoordinate, 4, "3-four"},
		{"TrailingGarbage", "A\n3-4-5\n", ErrInvalidCoordinate, InvalidCoordinate, 2, "3-4-5"},
		{"NaN", "A\nNaN-1\n", ErrInvalidCoordinate, InvalidCoordinate, 2, "NaN-1"},
		{"Overflow", "A\n1e400-1\n", ErrInvalidCoordinate, InvalidCoordinate, 2, "1e400-1"},
		{"LongCoordinateLine", "A\n" + strings.Repeat("1", maxLineSize+1) + "\n", ErrMalformedRecord, MalformedRecord, 2, "token too long"},
		{"LongNameLine", "A\n0-0\n" + strings.Repeat("B", maxLineSize+1) + "\n", ErrMalformedRecord, MalformedRecord, 3, "token too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.kind, le.Kind)
			assert.Equal(t, tt.line, le.Line)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_SignedCoordinates(t *testing.T) {
	tests := []struct {
		line string
		want model.Point
	}{
		{"3-4", model.Pt(3, 4)},
		{"-3--4", model.Pt(-3, -4)},
		{"3--4", model.Pt(3, -4)},
		{"-3-4", model.Pt(-3, 4)},
		{"1e-3-2.5", model.Pt(0.001, 2.5)},
		{"1E-3--2E-1", model.Pt(0.001, -0.2)},
		{" 1.5 - 2.5 ", model.Pt(1.5, 2.5)},
		{"+1-+2", model.Pt(1, 2)},
		{"0x1p-3-2", model.Pt(0.125, 2)},
		{"-0X1P-2--0x1p1", model.Pt(-0.25, -2)},
		{"1-0x1p-3", model.Pt(1, 0.125)},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			reg, err := Parse(strings.NewReader("P\n" + tt.line + "\n"))
			require.NoError(t, err)
			p, ok := reg.Lookup("P")
			require.True(t, ok)
			assert.InDelta(t, tt.want.X, p.X, 1e-12)
			assert.InDelta(t, tt.want.Y, p.Y, 1e-12)
		})
	}
}

func TestParse_DuplicateLastWins(t *testing.T) {
	src := "A\n0-0\nB\n5-5\nA\n10-10\n"

	reg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, reg.Duplicates())

	p, _ := reg.Lookup("A")
	assert.Equal(t, model.Pt(10, 10), p)

	// No stale index entries survive the overwrite.
	assert.Equal(t, 2, reg.XIndex().Len())
	assert.True(t, reg.XIndex().Range(0, 0).IsEmpty())
	assert.True(t, reg.YIndex().Range(0, 0).IsEmpty())
}

func TestParse_LongLineIsNotSourceFailure(t *testing.T) {
	_, err := Parse(strings.NewReader("A\n" + strings.Repeat("9", maxLineSize+1)))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSourceUnavailable))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoadError_Unwrap(t *testing.T) {
	_, err := Parse(strings.NewReader("A\nx-1\n"))
	require.Error(t, err)
	assert.NotNil(t, errors.Unwrap(err))
	assert.False(t, errors.Is(err, ErrSourceUnavailable))
	assert.Equal(t, "InvalidCoordinate", InvalidCoordinate.String())
}
