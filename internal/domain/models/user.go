// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role value the platform recognizes. A user with no
// role is an ordinary user.
const RoleAdmin = "admin"

// User is a registered platform user. Email is the natural key and is kept
// unique by an index on the users collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Github   string             `bson:"github,omitempty" json:"github,omitempty"`
	Facebook string             `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"` // registration timestamp, RFC3339 when stored as a datetime
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UnmarshalBSON decodes a stored user. Non-string profile values are read
// as text and a datetime or numeric registration date becomes RFC3339.
func (u *User) UnmarshalBSON(data []byte) error {
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return err
	}
	*u = User{
		ID:       objectIDOf(raw.Lookup("_id")),
		Email:    textOf(raw.Lookup("email")),
		Name:     textOf(raw.Lookup("name")),
		Role:     textOf(raw.Lookup("role")),
		Github:   textOf(raw.Lookup("github")),
		Facebook: textOf(raw.Lookup("facebook")),
		Linkedin: textOf(raw.Lookup("linkedin")),
		Date:     dateOf(raw.Lookup("date")),
	}
	return nil
}
