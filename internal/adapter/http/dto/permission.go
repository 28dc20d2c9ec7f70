package dto

type GrantItem struct {
	ID         uint64            `json:"id"`
	TacheID    uint64            `json:"tacheId"`
	UserID     uint64            `json:"userId"`
	Permission string            `json:"permission"`
	User       *UserIdentityItem `json:"user,omitempty"`
}

type AssignPermissionRequest struct {
	UserID     uint64 `json:"userId"`
	Permission string `json:"permission"`
}
