package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a user document in the users collection.
// Password carries the plaintext on signup input and the bcrypt hash once
// persisted; it is never included in any response body.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	Password string             `bson:"password" json:"password,omitempty" binding:"required"`
	Role     string             `bson:"role" json:"role" binding:"required"`
	Age      int                `bson:"age" json:"age" binding:"required"`
	Phone    string             `bson:"phone" json:"phone" binding:"required"`
}
