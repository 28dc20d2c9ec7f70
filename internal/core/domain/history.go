package domain

import "time"

type ActionKind string

const (
	ActionRead   ActionKind = "READ"
	ActionModify ActionKind = "MODIFY"
	ActionDelete ActionKind = "DELETE"
)

// ActionEntry is one append-only audit record. Entries are never updated
// or deleted; TacheLibelle is joined at read time and is empty once the
// task itself is gone.
type ActionEntry struct {
	ID           uint64
	TacheID      uint64
	UserID       uint64
	Action       ActionKind
	Timestamp    time.Time
	User         UserIdentity
	TacheLibelle string
}
