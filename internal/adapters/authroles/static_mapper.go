package authroles

import (
	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups to roles by simple string membership.
// Admin wins over user when both groups are present.
type StaticRoleMapper struct {
	AdminGroup string
	UserGroup  string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.UserGroup != "" && g == m.UserGroup {
			return domainauth.RoleUser
		}
	}
	return domainauth.RoleGuest
}
