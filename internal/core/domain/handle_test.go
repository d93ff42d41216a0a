package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandle(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  Handle
		valid bool
	}{
		{name: "simple", raw: "alice", want: "alice", valid: true},
		{name: "with separators", raw: "valid.name1", want: "valid.name1", valid: true},
		{name: "underscore inside", raw: "a_b_c", want: "a_b_c", valid: true},
		{name: "uppercase normalized", raw: "MovieBuff", want: "moviebuff", valid: true},
		{name: "max length", raw: strings.Repeat("a", 25), want: Handle(strings.Repeat("a", 25)), valid: true},
		{name: "min length", raw: "abc", want: "abc", valid: true},

		{name: "too short", raw: "ab", valid: false},
		{name: "empty", raw: "", valid: false},
		{name: "too long", raw: strings.Repeat("a", 26), valid: false},
		{name: "hyphen out of alphabet", raw: "in--valid", valid: false},
		{name: "space", raw: "a b", valid: false},
		{name: "leading dot", raw: ".abc", valid: false},
		{name: "leading underscore", raw: "_abc", valid: false},
		{name: "trailing underscore", raw: "abc_", valid: false},
		{name: "trailing dot", raw: "abc.", valid: false},
		{name: "double dot", raw: "a..b", valid: false},
		{name: "dot underscore", raw: "a._b", valid: false},
		{name: "underscore dot", raw: "a_.b", valid: false},
		{name: "double underscore", raw: "a__b", valid: false},
		{name: "non-ascii", raw: "abcé", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHandle(tc.raw)
			if !tc.valid {
				require.ErrorIs(t, err, ErrHandleInvalid)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	assert.Equal(t, RatingSystemTierlist, prefs.RatingSystem)
	assert.Equal(t, [TierCount]string{
		"Unwatchable", "Awful", "Bad", "Good", "Great", "Excellent", "Masterpiece",
	}, prefs.TierNames)
}
