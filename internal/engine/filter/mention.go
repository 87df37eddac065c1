package filter

import (
	"regexp"
	"strings"
)

const botSuffix = "bot"

var mentionPattern = regexp.MustCompile(`@[A-Za-z0-9_]{5,32}\b`)

// ExtractMention returns the first handle mentioned in text without the leading @.
func ExtractMention(text string) (string, bool) {
	match := mentionPattern.FindString(text)
	if match == "" {
		return "", false
	}

	return match[1:], true
}

// IsBotHandle reports whether the handle follows the bot account naming convention.
func IsBotHandle(handle string) bool {
	return strings.HasSuffix(strings.ToLower(handle), botSuffix)
}
