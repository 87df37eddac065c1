package models

type CommandType string

const (
	CommandStart     CommandType = "/start"
	CommandHelp      CommandType = "/help"
	CommandWork      CommandType = "/work"
	CommandBan       CommandType = "/ban"
	CommandUnban     CommandType = "/unban"
	CommandBans      CommandType = "/bans"
	CommandBlock     CommandType = "/block"
	CommandKeyword   CommandType = "/keyword"
	CommandUnkeyword CommandType = "/unkeyword"
	CommandKeywords  CommandType = "/keywords"
	CommandIgnore    CommandType = "/ignore"
	CommandUnignore  CommandType = "/unignore"
	CommandIgnores   CommandType = "/ignores"
	CommandChat      CommandType = "/chat"
	CommandUnchat    CommandType = "/unchat"
	CommandChats     CommandType = "/chats"
	CommandAnswer    CommandType = "/answer"
	CommandUnanswer  CommandType = "/unanswer"
	CommandAnswers   CommandType = "/answers"
	CommandRate      CommandType = "/rate"
	CommandAntiFlood CommandType = "/antiflood"
	CommandAck       CommandType = "/ack"
	CommandFolders   CommandType = "/folders"
	CommandMembers   CommandType = "/members"
	CommandJob       CommandType = "/job"
	CommandTitles    CommandType = "/titles"
	CommandUnknown   CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Args     string
	Username string
}
