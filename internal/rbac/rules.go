package rbac

// Role names stored on users.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	RoleMember: {
		"quiz:take",
		"result:view-own",
		"report:free",
		"report:premium",
		"user:change_password",
	},
	RoleAdmin: {
		"*", // everything
	},
}
