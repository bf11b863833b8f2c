package classes

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class approval states. Approve and deny are unconditional writes, so
// re-approving a denied class succeeds; there is no terminal state.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName" json:"instructorName"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Price           float64            `bson:"price" json:"price"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
