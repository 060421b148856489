package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole defines allowed roles in the system. A user created on first
// sign-in has no role until an admin promotes them.
type UserRole string

const (
	RoleNone  UserRole = ""
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email" binding:"required,email"`
	Role  UserRole           `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
