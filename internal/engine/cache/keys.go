package cache

import "strconv"

const (
	KeyRules        = "rules"
	KeyAnswers      = "messages_to_answer"
	KeyBanned       = "banned_handles"
	KeyOwnerConfig  = "owner_config"
	KeySendCounter  = "send_message:per_minute"
	keyCursorPrefix = "cursor:"
)

func KeyWorkFlag(botID int64) string {
	return "bot:" + strconv.FormatInt(botID, 10) + ":is_work"
}

func KeySession(sessionPath string) string {
	return "session:" + sessionPath
}

func KeyCursor(channelRef string) string {
	return keyCursorPrefix + channelRef
}
