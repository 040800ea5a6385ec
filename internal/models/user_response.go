package models

// UserSummary is the projection returned by the user list endpoint.
// The bson tags match the projection applied by the user repository.
type UserSummary struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
	Age   int    `bson:"age" json:"age"`
	Phone string `bson:"phone" json:"phone"`
}
