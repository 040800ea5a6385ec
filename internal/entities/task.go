package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task represents a task document in the allTasks collection.
// TaskID is the caller-supplied identifier used for all external addressing;
// the Mongo _id is internal only.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TaskID      string             `bson:"taskId" json:"taskId" binding:"required,uuid4"`
	Title       string             `bson:"title" json:"title" binding:"required"`
	Assignee    string             `bson:"assignee" json:"assignee" binding:"required,email"`
	Description string             `bson:"description" json:"description" binding:"required"`
	Type        string             `bson:"type" json:"type" binding:"required"`
	AssignedOn  string             `bson:"assignedOn" json:"assignedOn" binding:"required"`
	Status      string             `bson:"status" json:"status" binding:"required"`
	AssignedTo  string             `bson:"assignedTo" json:"assignedTo" binding:"required,email"`
	StoryPoints int                `bson:"storyPoints" json:"storyPoints" binding:"required"`
	Comments    *string            `bson:"comments,omitempty" json:"comments,omitempty"`
	Deadline    time.Time          `bson:"deadline" json:"deadline" binding:"required"`
	Priority    string             `bson:"priority" json:"priority" binding:"required"`
}
