package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DefaultMinMatrixColumns is the minimum number of destination columns a
// plausible passport-index header must carry. Anything below this aborts the
// build: a truncated export would otherwise silently shrink the site.
const DefaultMinMatrixColumns = 50

const sniffSampleSize = 2000

// MatrixRow is one origin row of the passport-index matrix.
type MatrixRow struct {
	Origin string
	Values []string
}

// PassportMatrix is the tokenized source matrix. Header holds the
// destination codes (the first header cell, the origin column label, is
// dropped).
type PassportMatrix struct {
	Delimiter rune
	Header    []string
	Rows      []MatrixRow
}

// SniffDelimiter inspects a sample of the raw text and picks comma or
// semicolon, whichever occurs more often outside quoted regions. Ties and
// empty samples fall back to comma.
func SniffDelimiter(text string) rune {
	sample := text
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	var commas, semicolons int
	inQuotes := false
	for _, ch := range sample {
		switch ch {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semicolons++
			}
		}
	}

	if semicolons > commas {
		return ';'
	}
	return ','
}

// ParsePassportMatrix tokenizes the raw matrix text. Quoting follows RFC
// 4180: doubled quotes inside quoted fields are literal, fields containing
// the delimiter or newlines must be quoted. All-whitespace rows are skipped.
// Fewer than 2 data rows or fewer than minColumns destination columns is a
// fatal parse error; pass 0 to use DefaultMinMatrixColumns.
func ParsePassportMatrix(text string, minColumns int) (*PassportMatrix, error) {
	if minColumns <= 0 {
		minColumns = DefaultMinMatrixColumns
	}

	delimiter := SniffDelimiter(text)
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV: %w", err)
		}
		if isBlankRow(record) {
			continue
		}
		records = append(records, record)
	}

	if len(records) < 3 {
		return nil, fmt.Errorf("CSV too small: expected a header plus at least 2 data rows, got %d rows", len(records))
	}

	header := records[0]
	if len(header) < minColumns+1 {
		return nil, fmt.Errorf("implausible header: %d destination columns (minimum %d); check the source CSV", len(header)-1, minColumns)
	}

	matrix := &PassportMatrix{
		Delimiter: delimiter,
		Header:    header[1:],
	}
	for _, record := range records[1:] {
		matrix.Rows = append(matrix.Rows, MatrixRow{
			Origin: strings.TrimSpace(record[0]),
			Values: record[1:],
		})
	}

	return matrix, nil
}

func isBlankRow(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
