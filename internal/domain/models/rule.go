package models

type RuleKind string

const (
	RuleKeyword RuleKind = "keyword"
	RuleExclude RuleKind = "exclude"
	RuleAnswer  RuleKind = "answer"
)

// RuleSet is the owner's trigger and exclude vocabulary.
type RuleSet struct {
	Keywords []string `json:"keywords"`
	Excludes []string `json:"excludes"`
}

type BannedHandle struct {
	OwnerID int64
	Handle  string
	Blocked bool
}
