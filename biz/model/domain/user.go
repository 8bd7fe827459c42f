package domain

import "time"

type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// User is the resolved identity. ID is the storage row key and must never
// leave the process; PublicID is the only identifier handed to clients.
type User struct {
	ID           uint
	PublicID     string
	Name         string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) Role() Role {
	if u.Admin {
		return RoleAdmin
	}
	return RoleStandard
}
