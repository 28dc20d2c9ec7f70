package dto

type HistoryTaskRef struct {
	ID      uint64 `json:"id"`
	Libelle string `json:"libelle,omitempty"`
}

type ActionEntryItem struct {
	ID        uint64           `json:"id"`
	TacheID   uint64           `json:"tacheId"`
	UserID    uint64           `json:"userId"`
	Action    string           `json:"action"`
	Timestamp string           `json:"timestamp"`
	User      UserIdentityItem `json:"user"`
	Tache     HistoryTaskRef   `json:"tache"`
}
