package service

import (
	"strings"

	"github.com/samber/lo"
)

var listSeparators = strings.NewReplacer(",", "\n", ";", "\n")

// splitWords splits rule arguments on commas and line breaks. Words inside a
// line stay together so phrases can be used as rules.
func splitWords(args string) []string {
	lines := strings.Split(listSeparators.Replace(args), "\n")

	return lo.Uniq(lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		word := strings.ToLower(strings.Join(strings.Fields(line), " "))
		return word, word != ""
	}))
}

// splitLines keeps every non-empty line as is. Used for answer templates.
func splitLines(args string) []string {
	return lo.Uniq(lo.FilterMap(strings.Split(args, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	}))
}

// splitRefs splits handles and chat references on any whitespace or comma.
func splitRefs(args string) []string {
	return lo.Uniq(strings.Fields(listSeparators.Replace(args)))
}

// normalizeHandle returns the stored "@name" form of a user handle.
func normalizeHandle(handle string) string {
	return "@" + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

func normalizeHandles(args string) []string {
	return lo.Uniq(lo.FilterMap(splitRefs(args), func(ref string, _ int) (string, bool) {
		handle := normalizeHandle(ref)
		return handle, handle != "@"
	}))
}
