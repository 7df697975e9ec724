package tme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/previewkit/tme"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"space-grouped digits with trailing words", "363 520 subscribers", 363520},
		{"plain digits", "1739", 1739},
		{"leading text", "about 42 members", 42},
		{"no digits", "no counts here", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tme.ParseCount(tt.text))
		})
	}
}

func TestParseAbbrevCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"decimal K suffix", "1.47K", 1470},
		{"M suffix", "2M", 2000000},
		{"plain K suffix", "150K", 150000},
		{"space-grouped digits", "150 000", 150000},
		{"plain digits", "237", 237},
		{"empty", "", 0},
		{"garbage", "n/a", 0},
		{"lowercase suffix is not recognized", "150k", 0},
		{"K wins over M", "1K2M", 0}, // prefix isn't numeric after stripping K
		{"rounds to nearest", "1.2345K", 1235},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tme.ParseAbbrevCount(tt.text))
		})
	}
}

func TestParseAbbrevCount_NeverNegative(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"-5", "-1.5K", "-2M", "--", "-"} {
		assert.GreaterOrEqual(t, tme.ParseAbbrevCount(text), 0, "input %q", text)
	}
}

func TestParseMemberCounts(t *testing.T) {
	t.Parallel()

	t.Run("members and online pair", func(t *testing.T) {
		t.Parallel()

		members, online := tme.ParseMemberCounts("1 739 members, 41 online")
		assert.Equal(t, 1739, members)
		assert.Equal(t, 41, online)
	})

	t.Run("singular member", func(t *testing.T) {
		t.Parallel()

		members, online := tme.ParseMemberCounts("1 member")
		assert.Equal(t, 1, members)
		assert.Equal(t, 0, online)
	})

	t.Run("absent patterns default to zero", func(t *testing.T) {
		t.Parallel()

		members, online := tme.ParseMemberCounts("@somebot")
		assert.Zero(t, members)
		assert.Zero(t, online)
	})
}
