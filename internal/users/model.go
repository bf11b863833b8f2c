package users

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// User as stored in the users collection. An empty role means a regular
// student account. Field names stay camelCase to match the existing database.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
