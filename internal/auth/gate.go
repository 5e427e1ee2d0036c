package auth

import (
	"plotmarket/pkg/domain"
	"plotmarket/pkg/serrors"
)

// Tier is a named set of roles allowed to perform an operation.
type Tier int

const (
	// TierActiveUser admits any active account.
	TierActiveUser Tier = iota
	// TierAdmin admits admin and master_admin.
	TierAdmin
	// TierMasterAdmin admits master_admin only.
	TierMasterAdmin
)

func (t Tier) String() string {
	switch t {
	case TierActiveUser:
		return "active user"
	case TierAdmin:
		return "admin"
	case TierMasterAdmin:
		return "master admin"
	}

	return "unknown"
}

// Allows reports whether role belongs to tier.
func Allows(role domain.Role, tier Tier) bool {
	switch tier {
	case TierActiveUser:
		return role.Valid()
	case TierAdmin:
		return role.IsAdmin()
	case TierMasterAdmin:
		return role == domain.RoleMasterAdmin
	}

	return false
}

// Authorize decides whether user may act at tier. Inactive accounts are
// rejected before the role is considered.
func Authorize(user domain.User, tier Tier) error {
	if !user.IsActive {
		return serrors.With(serrors.ErrInactiveAccount, "inactive user")
	}
	if !Allows(user.Role, tier) {
		return serrors.With(serrors.ErrForbidden, "%s access required", tier)
	}

	return nil
}
