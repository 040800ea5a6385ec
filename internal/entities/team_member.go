package entities

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeamMember represents a team member document in the teamMembers collection.
type TeamMember struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Age          *int               `bson:"age,omitempty" json:"age,omitempty"`
	Email        string             `bson:"email" json:"email" binding:"required,email"`
	Phone        string             `bson:"phone" json:"phone" binding:"required"`
	Role         string             `bson:"role" json:"role" binding:"required"`
	Remarks      *string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	TeamMemberID string             `bson:"teamMemberId" json:"teamMemberId" binding:"required,uuid4"`
	Access       string             `bson:"access" json:"access" binding:"required"`
}
