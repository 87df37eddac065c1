package filter

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matthew11k/outreach/internal/config"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
)

// Result is the outcome of evaluating one message body. Both match lists are
// filled regardless of Accepted.
type Result struct {
	Accepted        bool
	MatchedExcludes []string
	MatchedTriggers []string
}

type Matcher interface {
	Evaluate(text string, triggers, excludes []string) Result
}

var lower = cases.Lower(language.Und)

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Normalize lower-cases text and turns line breaks into spaces.
func Normalize(text string) string {
	return newlines.Replace(lower.String(text))
}

// ExactMatcher accepts a text holding at least one trigger substring and no exclude substring.
type ExactMatcher struct{}

func (ExactMatcher) Evaluate(text string, triggers, excludes []string) Result {
	normalized := Normalize(text)

	return buildResult(
		matchAll(excludes, func(word string) bool { return strings.Contains(normalized, word) }),
		matchAll(triggers, func(word string) bool { return strings.Contains(normalized, word) }),
	)
}

// NewMatcher picks the matching strategy configured for the engine.
func NewMatcher(cfg *config.Config) (Matcher, error) {
	switch config.FilterMode(strings.ToUpper(string(cfg.FilterMode))) {
	case config.FilterExact, "":
		return ExactMatcher{}, nil
	case config.FilterFuzzy:
		return NewFuzzyMatcher(cfg.FuzzyWordDistance, cfg.FuzzySentenceRatio), nil
	default:
		return nil, &customerrors.ErrUnknownFilterMode{Mode: string(cfg.FilterMode)}
	}
}

func buildResult(excludes, triggers []string) Result {
	return Result{
		Accepted:        len(triggers) > 0 && len(excludes) == 0,
		MatchedExcludes: excludes,
		MatchedTriggers: triggers,
	}
}

func matchAll(words []string, match func(word string) bool) []string {
	matched := make([]string, 0)

	for _, word := range lo.Uniq(lo.Map(words, func(w string, _ int) string { return Normalize(w) })) {
		if word == "" {
			continue
		}

		if match(word) {
			matched = append(matched, word)
		}
	}

	sort.Strings(matched)

	return matched
}
