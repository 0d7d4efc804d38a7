package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		entry types.MatchLogEntry
		want  string
	}{
		{
			name: "matched",
			entry: types.MatchLogEntry{
				FileName:  "acme.xlsx",
				Key:       "acme",
				Outcome:   types.OutcomeMatched,
				LegalName: "ACME LTDA",
			},
			want: "acme.xlsx → ACME LTDA",
		},
		{
			name: "not found",
			entry: types.MatchLogEntry{
				FileName: "mystery.xlsx",
				Key:      "mystery",
				Outcome:  types.OutcomeNotFound,
			},
			want: "NOT FOUND: mystery.xlsx (normalized: mystery)",
		},
		{
			name: "open error",
			entry: types.MatchLogEntry{
				FileName: "broken.xlsx",
				Key:      "broken",
				Outcome:  types.OutcomeOpenError,
				Err:      errors.New("zip: not a valid zip file"),
			},
			want: "ERROR OPENING broken.xlsx: zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.entry))
		})
	}
}

func TestRender(t *testing.T) {
	log := []types.MatchLogEntry{
		{FileName: "acme.xlsx", Outcome: types.OutcomeMatched, LegalName: "ACME LTDA"},
		{FileName: "mystery.xlsx", Key: "mystery", Outcome: types.OutcomeNotFound},
	}

	out := Render(log, 250*time.Millisecond)

	assert.Contains(t, out, "acme.xlsx → ACME LTDA")
	assert.Contains(t, out, "NOT FOUND: mystery.xlsx (normalized: mystery)")
	assert.Contains(t, out, "Total files:     2")
	assert.Contains(t, out, "Matched:         1")
	assert.Contains(t, out, "Not found:       1")
}

func TestCountsEmptyLog(t *testing.T) {
	matched, notFound, openErrors := Counts(nil)
	assert.Zero(t, matched)
	assert.Zero(t, notFound)
	assert.Zero(t, openErrors)
}
