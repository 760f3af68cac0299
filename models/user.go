package models

import "time"

// User roles.
const (
	RoleAdmin     = "ADMIN"
	RoleCounselor = "COUNSELOR"
	RoleStudent   = "STUDENT"
)

// User is a platform account. Role decides which side of a booking the
// user sits on and whether alert fan-out reaches them.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// DisplayName is the human-readable name used when enriching bookings
// and building alert notification titles.
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserUpdate enumerates the fields a PATCH may change. Unknown JSON
// fields are rejected at the boundary; there is no reflective
// patch-by-attribute-name path.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
}
