package domain

import (
	"errors"
	"time"
)

// Role is the single role assigned to a user. Roles form a strict
// privilege hierarchy; see RoleRank.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleVenueStaff Role = "venue_staff"
	RoleVenueAdmin Role = "venue_admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleRanks maps each role to its privilege rank. A higher rank satisfies
// every requirement expressed at a lower rank. The table is fixed at
// compile time and never mutated.
var roleRanks = map[Role]int{
	RoleCustomer:   0,
	RoleVenueStaff: 1,
	RoleVenueAdmin: 2,
	RoleSuperAdmin: 3,
}

// RoleRank returns the privilege rank for a role. Unknown roles rank 0 so
// an unrecognised role string can never grant elevated access.
func RoleRank(r Role) int {
	return roleRanks[r]
}

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	_, ok := roleRanks[r]
	return ok
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated actor in the system.
type User struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone         *string    `json:"phone,omitempty" gorm:"uniqueIndex;size:32"`
	PasswordHash  string     `json:"-" gorm:"size:255;not null"`
	FullName      string     `json:"full_name" gorm:"size:255"`
	Role          Role       `json:"role" gorm:"size:32;not null;default:customer"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:true"`
	EmailVerified bool       `json:"email_verified" gorm:"not null;default:false"`
	PhoneVerified bool       `json:"phone_verified" gorm:"not null;default:false"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
