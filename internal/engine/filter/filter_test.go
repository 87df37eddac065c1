package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthew11k/outreach/internal/config"
	"github.com/matthew11k/outreach/internal/engine/filter"
)

func TestExactMatcher_Evaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		triggers []string
		excludes []string
		expected filter.Result
	}{
		{
			name:     "trigger without exclude",
			text:     "free crypto signals",
			triggers: []string{"crypto"},
			excludes: []string{"scam"},
			expected: filter.Result{Accepted: true, MatchedExcludes: []string{}, MatchedTriggers: []string{"crypto"}},
		},
		{
			name:     "exclude wins over trigger",
			text:     "free crypto scam",
			triggers: []string{"crypto"},
			excludes: []string{"scam"},
			expected: filter.Result{Accepted: false, MatchedExcludes: []string{"scam"}, MatchedTriggers: []string{"crypto"}},
		},
		{
			name:     "no trigger",
			text:     "just a post",
			triggers: []string{"crypto"},
			excludes: nil,
			expected: filter.Result{Accepted: false, MatchedExcludes: []string{}, MatchedTriggers: []string{}},
		},
		{
			name:     "case and newlines are normalized",
			text:     "Ищу\nКРИПТО трейдера",
			triggers: []string{"ищу крипто", "Трейдер"},
			excludes: []string{},
			expected: filter.Result{Accepted: true, MatchedExcludes: []string{}, MatchedTriggers: []string{"ищу крипто", "трейдер"}},
		},
		{
			name:     "matches are sorted and unique",
			text:     "beta alpha",
			triggers: []string{"beta", "alpha", "ALPHA"},
			excludes: nil,
			expected: filter.Result{Accepted: true, MatchedExcludes: []string{}, MatchedTriggers: []string{"alpha", "beta"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := filter.ExactMatcher{}.Evaluate(tt.text, tt.triggers, tt.excludes)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world again", filter.Normalize("Hello\nWORLD\r\nagain"))
}

func TestFuzzyMatcher_Evaluate(t *testing.T) {
	t.Parallel()

	matcher := filter.NewFuzzyMatcher(1, 0.2)

	result := matcher.Evaluate("looking for a cripto trader", []string{"crypto"}, []string{"scam"})
	assert.True(t, result.Accepted)
	assert.Equal(t, []string{"crypto"}, result.MatchedTriggers)
	assert.Empty(t, result.MatchedExcludes)

	result = matcher.Evaluate("нужен менеджер по продажам", []string{"менаджер"}, nil)
	assert.True(t, result.Accepted, "расстояние считается в символах, а не в байтах")

	result = matcher.Evaluate("work from hone today", []string{"work from home"}, []string{"scum"})
	assert.True(t, result.Accepted)

	result = matcher.Evaluate("crypto scan alert", []string{"crypto"}, []string{"scam"})
	assert.False(t, result.Accepted)
	assert.Equal(t, []string{"scam"}, result.MatchedExcludes)
	assert.Equal(t, []string{"crypto"}, result.MatchedTriggers)

	result = matcher.Evaluate("completely unrelated", []string{"crypto"}, nil)
	assert.False(t, result.Accepted)
	assert.Empty(t, result.MatchedTriggers)
}

func TestFuzzyMatcher_Deterministic(t *testing.T) {
	t.Parallel()

	matcher := filter.NewFuzzyMatcher(1, 0.2)

	first := matcher.Evaluate("cripto and krypto", []string{"crypto", "krypto"}, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, matcher.Evaluate("cripto and krypto", []string{"crypto", "krypto"}, nil))
	}
}

func TestNewMatcher(t *testing.T) {
	t.Parallel()

	m, err := filter.NewMatcher(&config.Config{FilterMode: config.FilterExact})
	require.NoError(t, err)
	assert.IsType(t, filter.ExactMatcher{}, m)

	m, err = filter.NewMatcher(&config.Config{FilterMode: "fuzzy", FuzzyWordDistance: 2, FuzzySentenceRatio: 0.3})
	require.NoError(t, err)
	assert.IsType(t, &filter.FuzzyMatcher{}, m)

	_, err = filter.NewMatcher(&config.Config{FilterMode: "regex"})
	require.Error(t, err)
}

func TestExtractMention(t *testing.T) {
	t.Parallel()

	handle, ok := filter.ExtractMention("contact @johndoe99 now")
	assert.True(t, ok)
	assert.Equal(t, "johndoe99", handle)

	_, ok = filter.ExtractMention("no handle here")
	assert.False(t, ok)

	_, ok = filter.ExtractMention("too short @abcd")
	assert.False(t, ok)

	handle, ok = filter.ExtractMention("first @first_one then @second_one")
	assert.True(t, ok)
	assert.Equal(t, "first_one", handle)

	handle, ok = filter.ExtractMention("ping @shortbot")
	assert.True(t, ok)
	assert.Equal(t, "shortbot", handle)
	assert.True(t, filter.IsBotHandle(handle))
}

func TestIsBotHandle(t *testing.T) {
	t.Parallel()

	assert.True(t, filter.IsBotHandle("helper_bot"))
	assert.True(t, filter.IsBotHandle("HelperBOT"))
	assert.False(t, filter.IsBotHandle("robotics_fan"))
	assert.False(t, filter.IsBotHandle("johndoe99"))
}
