package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildMatrixCSV generates a plausible matrix: headerCols destination
// columns and the given origin rows.
func buildMatrixCSV(delimiter string, headerCols int, rows ...string) string {
	header := make([]string, 0, headerCols+1)
	header = append(header, "Passport")
	for i := 0; i < headerCols; i++ {
		header = append(header, fmt.Sprintf("D%02d", i))
	}

	lines := []string{strings.Join(header, delimiter)}
	lines = append(lines, rows...)
	return strings.Join(lines, "\n")
}

func fillRow(delimiter, origin string, cols int) string {
	values := make([]string, 0, cols+1)
	values = append(values, origin)
	for i := 0; i < cols; i++ {
		values = append(values, "90")
	}
	return strings.Join(values, delimiter)
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', SniffDelimiter("a,b,c\nd,e,f"))
	assert.Equal(t, ';', SniffDelimiter("a;b;c\nd;e;f"))
	// Delimiters inside quoted fields do not count.
	assert.Equal(t, ';', SniffDelimiter(`"x,y,z,w,v";b;c`))
	// Tie falls back to comma.
	assert.Equal(t, ',', SniffDelimiter("plain text"))
}

func TestParsePassportMatrix(t *testing.T) {
	text := buildMatrixCSV(",", 60,
		fillRow(",", "Chile", 60),
		fillRow(",", "Argentina", 60),
	)

	matrix, err := ParsePassportMatrix(text, 0)
	assert.NoError(t, err)
	assert.Equal(t, ',', matrix.Delimiter)
	assert.Len(t, matrix.Header, 60)
	assert.Len(t, matrix.Rows, 2)
	assert.Equal(t, "Chile", matrix.Rows[0].Origin)
	assert.Equal(t, "90", matrix.Rows[0].Values[0])
}

func TestParsePassportMatrixSemicolon(t *testing.T) {
	text := buildMatrixCSV(";", 60,
		fillRow(";", "Chile", 60),
		fillRow(";", "Argentina", 60),
	)

	matrix, err := ParsePassportMatrix(text, 0)
	assert.NoError(t, err)
	assert.Equal(t, ';', matrix.Delimiter)
	assert.Len(t, matrix.Rows, 2)
}

func TestParsePassportMatrixQuotedFields(t *testing.T) {
	text := buildMatrixCSV(",", 3,
		`"Korea, North",90,visa required,"say ""hi"""`,
		fillRow(",", "Chile", 3),
	)

	matrix, err := ParsePassportMatrix(text, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Korea, North", matrix.Rows[0].Origin)
	assert.Equal(t, `say "hi"`, matrix.Rows[0].Values[2])
}

func TestParsePassportMatrixSkipsBlankRows(t *testing.T) {
	text := buildMatrixCSV(",", 60,
		fillRow(",", "Chile", 60),
		"   ",
		fillRow(",", "Argentina", 60),
	)

	matrix, err := ParsePassportMatrix(text, 0)
	assert.NoError(t, err)
	assert.Len(t, matrix.Rows, 2)
}

func TestParsePassportMatrixTooFewRows(t *testing.T) {
	text := buildMatrixCSV(",", 60, fillRow(",", "Chile", 60))

	_, err := ParsePassportMatrix(text, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CSV too small")
}

func TestParsePassportMatrixImplausibleHeader(t *testing.T) {
	text := buildMatrixCSV(",", 5,
		fillRow(",", "Chile", 5),
		fillRow(",", "Argentina", 5),
	)

	_, err := ParsePassportMatrix(text, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "implausible header")
}
