package filter

import (
	"strings"
	"unicode"

	"github.com/xrash/smetrics"
)

// FuzzyMatcher tolerates typos: a single-word rule matches any text word within
// wordDistance edits, a phrase matches a word window whose edit distance
// relative to the phrase length stays within sentenceRatio.
type FuzzyMatcher struct {
	wordDistance  int
	sentenceRatio float64
}

func NewFuzzyMatcher(wordDistance int, sentenceRatio float64) *FuzzyMatcher {
	if wordDistance < 0 {
		wordDistance = 0
	}

	if sentenceRatio < 0 {
		sentenceRatio = 0
	}

	return &FuzzyMatcher{
		wordDistance:  wordDistance,
		sentenceRatio: sentenceRatio,
	}
}

func (m *FuzzyMatcher) Evaluate(text string, triggers, excludes []string) Result {
	normalized := Normalize(text)
	words := tokenize(normalized)

	match := func(rule string) bool {
		return m.matches(normalized, words, rule)
	}

	return buildResult(matchAll(excludes, match), matchAll(triggers, match))
}

func (m *FuzzyMatcher) matches(normalized string, words []string, rule string) bool {
	if strings.Contains(normalized, rule) {
		return true
	}

	ruleWords := tokenize(rule)

	switch {
	case len(ruleWords) == 0:
		return false
	case len(ruleWords) == 1:
		for _, w := range words {
			if distance(w, ruleWords[0]) <= m.wordDistance {
				return true
			}
		}

		return false
	default:
		phrase := strings.Join(ruleWords, " ")
		phraseLen := len([]rune(phrase))

		for i := 0; i+len(ruleWords) <= len(words); i++ {
			window := strings.Join(words[i:i+len(ruleWords)], " ")
			if float64(distance(window, phrase))/float64(phraseLen) <= m.sentenceRatio {
				return true
			}
		}

		return false
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// distance is the Levenshtein distance in runes. smetrics works on bytes, so
// both strings are first re-encoded over a shared one-byte alphabet.
func distance(a, b string) int {
	ca, cb, ok := compress(a, b)
	if !ok {
		return smetrics.WagnerFischer(a, b, 1, 1, 1)
	}

	return smetrics.WagnerFischer(ca, cb, 1, 1, 1)
}

func compress(a, b string) (string, string, bool) {
	alphabet := make(map[rune]byte)

	encode := func(s string) ([]byte, bool) {
		out := make([]byte, 0, len(s))

		for _, r := range s {
			code, ok := alphabet[r]
			if !ok {
				if len(alphabet) == 256 {
					return nil, false
				}

				code = byte(len(alphabet))
				alphabet[r] = code
			}

			out = append(out, code)
		}

		return out, true
	}

	ea, ok := encode(a)
	if !ok {
		return "", "", false
	}

	eb, ok := encode(b)
	if !ok {
		return "", "", false
	}

	return string(ea), string(eb), true
}
