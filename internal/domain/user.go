package domain

import "time"

type Role = string

// Canonical role set. The legacy names ("user", "mchs") are accepted on input
// and normalized at the boundary.
const (
	RoleResident  Role = "resident"
	RoleExpert    Role = "expert"
	RoleEmergency Role = "emergency"
	RoleAdmin     Role = "admin"
)

func ValidRole(r string) bool {
	switch r {
	case RoleResident, RoleExpert, RoleEmergency, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole maps legacy role names onto the canonical set.
func NormalizeRole(r string) Role {
	switch r {
	case "user":
		return RoleResident
	case "mchs":
		return RoleEmergency
	default:
		return r
	}
}

type User struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FullName     *string    `db:"full_name"`
	Role         Role       `db:"role"`
	Phone        *string    `db:"phone"`
	Address      *string    `db:"address"`
	IsActive     bool       `db:"is_active"`
	IsVerified   bool       `db:"is_verified"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLogin    *time.Time `db:"last_login"`

	ResetToken        *string    `db:"reset_token"`
	ResetTokenExpires *time.Time `db:"reset_token_expires"`
	VerificationToken *string    `db:"verification_token"`
}

// UserView is the single serialization mapping for User. full_name is
// duplicated as fullName: a compatibility shim the dashboard frontend still
// depends on.
type UserView struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	FullName      *string `json:"full_name"`
	FullNameCamel *string `json:"fullName"`
	Role          Role    `json:"role"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	IsVerified    bool    `json:"is_verified"`
	IsActive      *bool   `json:"is_active,omitempty"`
	CreatedAt     string  `json:"created_at"`
	LastLogin     *string `json:"last_login,omitempty"`
}

// View renders the user for API responses. includeSensitive adds the active
// flag (own profile and admin listings only).
func (u *User) View(includeSensitive bool) *UserView {
	v := &UserView{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		FullNameCamel: u.FullName,
		Role:          u.Role,
		Phone:         u.Phone,
		Address:       u.Address,
		IsVerified:    u.IsVerified,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		s := u.LastLogin.UTC().Format(time.RFC3339)
		v.LastLogin = &s
	}
	if includeSensitive {
		active := u.IsActive
		v.IsActive = &active
	}
	return v
}

// DisplayName falls back to email when the profile has no full name.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}
