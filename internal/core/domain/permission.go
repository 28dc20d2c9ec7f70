package domain

// PermissionTier is a grantable capability level, strictly ordered:
// READ_ONLY < MODIFY_ONLY < FULL_ACCESS.
type PermissionTier string

const (
	PermissionReadOnly   PermissionTier = "READ_ONLY"
	PermissionModifyOnly PermissionTier = "MODIFY_ONLY"
	PermissionFullAccess PermissionTier = "FULL_ACCESS"
)

func ValidPermissionTier(p PermissionTier) bool {
	switch p {
	case PermissionReadOnly, PermissionModifyOnly, PermissionFullAccess:
		return true
	}
	return false
}

// AllowsModify reports whether the tier grants write access to the task.
func (p PermissionTier) AllowsModify() bool {
	return p == PermissionModifyOnly || p == PermissionFullAccess
}

// AllowsDelete reports whether the tier grants deletion of the task.
func (p PermissionTier) AllowsDelete() bool {
	return p == PermissionFullAccess
}

// Grant is an explicit permission record for a (task, grantee) pair.
// At most one grant exists per pair; re-granting overwrites the tier.
type Grant struct {
	ID         uint64
	TacheID    uint64
	UserID     uint64
	Permission PermissionTier
	User       *UserIdentity
}
