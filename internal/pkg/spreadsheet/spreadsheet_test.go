package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sample = Sheet{
	Name:    "Placed Students",
	Headers: []string{"Student Name", "Enrollment No", "Branch", "Company"},
	Rows: [][]string{
		{"Alice", "035208", "CSE", "Acme Corp"},
		{"Bob", "035209", "IT", "Globex"},
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	want := "Student Name,Enrollment No,Branch,Company\n" +
		"Alice,035208,CSE,Acme Corp\n" +
		"Bob,035209,IT,Globex\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Placed Students")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, sample.Headers, rows[0])
	assert.Equal(t, []string{"Alice", "035208", "CSE", "Acme Corp"}, rows[1])
}
