package constants

import "fmt"

// Role yang dikenal sistem (kolom user_role).
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleTeacher     = "teacher"
	RoleUser        = "user"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyCoordinatorsCanAccess = "❌ Hanya admin atau coordinator yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess        = "❌ Hanya admin, coordinator, atau teacher yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
// Satu-satunya tempat kebijakan role didefinisikan; endpoint tidak boleh
// menulis literal role sendiri.
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoordinator,
		RoleTeacher,
		RoleUser,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleAdmin,
		RoleCoordinator,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleCoordinator,
		RoleTeacher,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
