package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Manages stores, staffing and special wages
	RoleStaff Role = "staff" // Regular parlor staff
)

type User struct {
	ID           string
	StoreID      *string
	Email        string
	PasswordHash *string
	DisplayName  string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BelongsTo checks if the user is assigned to the given store
func (u *User) BelongsTo(storeID string) bool {
	return u.StoreID != nil && *u.StoreID == storeID
}
