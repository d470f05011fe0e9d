package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleUser = "user"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never serialized
	Role     string             `bson:"role" json:"role"`
}
