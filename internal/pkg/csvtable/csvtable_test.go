package csvtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHeaders []string
		wantRows    int
		wantErr     error
	}{
		{
			name:        "simple table",
			input:       "Name,Email\nAlice,alice@x.edu\nBob,bob@x.edu\n",
			wantHeaders: []string{"Name", "Email"},
			wantRows:    2,
		},
		{
			name:        "ragged rows tolerated",
			input:       "Name,Email\nAlice\nBob,bob@x.edu,extra\n",
			wantHeaders: []string{"Name", "Email"},
			wantRows:    2,
		},
		{
			name:        "headers trimmed",
			input:       " Name , Email \nAlice,alice@x.edu\n",
			wantHeaders: []string{"Name", "Email"},
			wantRows:    1,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: apperrors.ErrEmptyUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeaders, table.Headers)
			assert.Len(t, table.Rows, tt.wantRows)
		})
	}
}

func TestEmailColumnIndex(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantIdx int
		wantOK  bool
	}{
		{"lowercase email", []string{"name", "email"}, 1, true},
		{"capitalized Email", []string{"Name", "Email"}, 1, true},
		{"primary_email", []string{"primary_email", "branch"}, 0, true},
		{"uppercase PRIMARY_EMAIL", []string{"PRIMARY_EMAIL"}, 0, true},
		{"no email column", []string{"name", "branch"}, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Headers: tt.headers}
			idx, ok := table.EmailColumnIndex()
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestExtractEmails(t *testing.T) {
	t.Run("normalizes and dedupes first occurrence", func(t *testing.T) {
		table := &Table{
			Headers: []string{"Name", "Email"},
			Rows: [][]string{
				{"Alice", " Alice@X.EDU "},
				{"Alice again", "alice@x.edu"},
				{"Bob", "bob@x.edu"},
			},
		}

		emails, skipped, err := table.ExtractEmails()
		require.NoError(t, err)
		assert.Equal(t, []string{"alice@x.edu", "bob@x.edu"}, emails)
		assert.Equal(t, 1, skipped)
	})

	t.Run("drops values without at-sign", func(t *testing.T) {
		table := &Table{
			Headers: []string{"email"},
			Rows: [][]string{
				{"not-an-email"},
				{""},
				{"ok@x.edu"},
			},
		}

		emails, skipped, err := table.ExtractEmails()
		require.NoError(t, err)
		assert.Equal(t, []string{"ok@x.edu"}, emails)
		assert.Zero(t, skipped)
	})

	t.Run("short rows skipped", func(t *testing.T) {
		table := &Table{
			Headers: []string{"name", "email"},
			Rows: [][]string{
				{"only-name"},
				{"Bob", "bob@x.edu"},
			},
		}

		emails, _, err := table.ExtractEmails()
		require.NoError(t, err)
		assert.Equal(t, []string{"bob@x.edu"}, emails)
	})

	t.Run("missing email column", func(t *testing.T) {
		table := &Table{Headers: []string{"name", "branch"}, Rows: [][]string{{"a", "b"}}}

		_, _, err := table.ExtractEmails()
		assert.ErrorIs(t, err, apperrors.ErrNoEmailColumn)
	})

	t.Run("no usable emails", func(t *testing.T) {
		table := &Table{Headers: []string{"email"}, Rows: [][]string{{"garbage"}}}

		_, _, err := table.ExtractEmails()
		assert.ErrorIs(t, err, apperrors.ErrEmptyUpload)
	})
}
