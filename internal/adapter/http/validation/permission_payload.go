package validation

import (
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

// BuildAssignPermissionInput validates a grant request: positive
// grantee id and a known tier.
func BuildAssignPermissionInput(req dto.AssignPermissionRequest) (uint64, domain.PermissionTier, error) {
	if req.UserID == 0 {
		return 0, "", domain.ErrInvalidPayload
	}

	tier := domain.PermissionTier(req.Permission)
	if !domain.ValidPermissionTier(tier) {
		return 0, "", domain.ErrInvalidPayload
	}

	return req.UserID, tier, nil
}
