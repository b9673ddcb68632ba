package entities

// Role is the caller's access level. Authentication itself is external to
// this service; requests arrive with an already-established identity.

type Role string

const (
	RoleSales Role = "sales"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated caller on whose behalf an operation runs.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
