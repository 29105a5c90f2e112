package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"quiz:view",
		"quiz:evaluate",
		"evaluation:view-own",
	},
	"teacher": {
		"quiz:create",
		"quiz:view",
		"quiz:view-answers",
		"quiz:evaluate",
		"evaluation:view-own",
		"evaluation:view-all",
	},
	"admin": {
		"*", // everything
	},
}
