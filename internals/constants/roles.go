package constants

import "fmt"

const (
	RoleOwner       = "owner"
	RoleEditor      = "editor"
	RoleContributor = "contributor"
)

// Role error message templates
const (
	ErrOnlyEditorsCanAccess = "❌ Only editors or owners may access %s."
	ErrOnlyOwnersCanAccess  = "❌ Only owners may access %s."
)

func RoleErrorEditor(feature string) string {
	return fmt.Sprintf(ErrOnlyEditorsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleContributor,
		RoleEditor,
		RoleOwner,
	}

	// editor, owner
	EditorAndAbove = []string{
		RoleEditor,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
