package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"http://example.test", "http://example.test", nil},
		{"  https://example.test/a?b=c  ", "https://example.test/a?b=c", nil},
		{"", "", ErrEmptyURL},
		{"   ", "", ErrEmptyURL},
		{"example.test", "", ErrInvalidURL},
		{"ftp://example.test", "", ErrInvalidURL},
		{"http://", "", ErrInvalidURL},
		{"http://example.test/" + strings.Repeat("a", MaxURLLength), "", ErrURLTooLong},
	}

	for _, c := range cases {
		got, err := ValidateURL(c.in)
		if c.wantErr != nil {
			assert.ErrorIs(t, err, c.wantErr, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestPage_RecordOutcomes(t *testing.T) {
	p, err := NewPage("http://example.test")
	require.NoError(t, err)
	assert.NotEqual(t, "", p.ID.String())

	p.RecordMiss(1)
	assert.Equal(t, OutcomeMiss, p.LastOutcome)
	assert.Equal(t, int64(1), p.AccessCount)
	require.NotNil(t, p.LastFetchedAt)

	p.RecordHit(2)
	assert.Equal(t, OutcomeHit, p.LastOutcome)
	assert.Equal(t, int64(2), p.AccessCount)

	p.RecordFailure(3, errors.New(strings.Repeat("x", MaxErrorLength+10)))
	assert.Equal(t, OutcomeFailed, p.LastOutcome)
	assert.Len(t, p.LastError, MaxErrorLength)
	assert.Equal(t, int64(3), p.AccessCount)

	// Counts never move backwards.
	p.RecordHit(1)
	assert.Equal(t, int64(3), p.AccessCount)
	assert.Empty(t, p.LastError)
}
