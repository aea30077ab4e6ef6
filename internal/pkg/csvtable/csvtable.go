// Package csvtable parses uploaded CSV files into header/row tables and
// extracts normalized email columns from them.
package csvtable

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

// Table is a parsed CSV: one header row and zero or more data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// emailHeaderAliases are the accepted column names for the email column,
// compared case-insensitively after trimming.
var emailHeaderAliases = []string{"email", "primary_email"}

// Parse reads a CSV stream into a Table. Rows may have ragged lengths;
// short rows are tolerated and handled by the column accessors.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewValidationError("malformed CSV: " + err.Error())
	}
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return &Table{Headers: headers, Rows: records[1:]}, nil
}

// EmailColumnIndex finds the email column among the headers.
func (t *Table) EmailColumnIndex() (int, bool) {
	for i, h := range t.Headers {
		lower := strings.ToLower(h)
		for _, alias := range emailHeaderAliases {
			if lower == alias {
				return i, true
			}
		}
	}
	return -1, false
}

// ExtractEmails returns the normalized emails from the email column in
// file order, first occurrence wins. Normalization trims whitespace and
// lowercases; values without an "@" are dropped. The second return value
// counts duplicates skipped after normalization.
func (t *Table) ExtractEmails() ([]string, int, error) {
	col, ok := t.EmailColumnIndex()
	if !ok {
		return nil, 0, apperrors.ErrNoEmailColumn
	}

	seen := make(map[string]struct{}, len(t.Rows))
	emails := make([]string, 0, len(t.Rows))
	skipped := 0

	for _, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(row[col]))
		if email == "" || !strings.Contains(email, "@") {
			continue
		}
		if _, dup := seen[email]; dup {
			skipped++
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	if len(emails) == 0 {
		return nil, 0, apperrors.ErrEmptyUpload
	}

	return emails, skipped, nil
}
