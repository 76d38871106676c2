package authroles

import (
	"testing"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	m := StaticRoleMapper{AdminGroup: "auction-admins", UserGroup: "auction-users"}

	cases := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{name: "admin group", groups: []string{"auction-admins"}, want: domainauth.RoleAdmin},
		{name: "user group", groups: []string{"auction-users"}, want: domainauth.RoleUser},
		{name: "admin wins over user", groups: []string{"auction-users", "auction-admins"}, want: domainauth.RoleAdmin},
		{name: "no match", groups: []string{"something-else"}, want: domainauth.RoleGuest},
		{name: "empty", groups: nil, want: domainauth.RoleGuest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Map(tc.groups); got != tc.want {
				t.Fatalf("Map(%v) = %v, want %v", tc.groups, got, tc.want)
			}
		})
	}
}

func TestStaticRoleMapper_EmptyConfigIsGuest(t *testing.T) {
	m := StaticRoleMapper{}
	if got := m.Map([]string{"auction-admins"}); got != domainauth.RoleGuest {
		t.Fatalf("Map with empty config = %v, want guest", got)
	}
}
