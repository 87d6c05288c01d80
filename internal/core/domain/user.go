package domain

// UserRole distinguishes workspace owners (hosts) from renters.
type UserRole string

const (
	RoleOwner  UserRole = "OWNER"
	RoleRenter UserRole = "RENTER"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       int64    `json:"userID"`
	Username     string   `json:"username"`
	Email        *string  `json:"email,omitempty"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	AuditFields
}

// IsOwner reports whether the user may host workspaces.
func (u User) IsOwner() bool {
	return u.Role == RoleOwner
}
