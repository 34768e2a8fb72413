package meeting

import (
	"time"
)

type Status = string

const (
	// StatusPending is the state of a freshly scheduled meeting.
	StatusPending Status = "pending"
	// StatusCancelled is terminal; cancelled meetings are kept, not deleted.
	StatusCancelled Status = "cancelled"
)

// Meeting is a scheduled meeting owned by the user that created it.
type Meeting struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	CreatorID   string     `bson:"creator_id" json:"creator_id"`
	ClientName  string     `bson:"client_name" json:"client_name"`
	ClientEmail string     `bson:"client_email,omitempty" json:"client_email,omitempty"`
	Date        string     `bson:"date" json:"date"`
	Time        string     `bson:"time" json:"time"`
	Location    string     `bson:"location" json:"location"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Status      Status     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// Filter narrows meeting listings. ClientName and Location are matched
// case-insensitively as substrings; Date is an exact match.
type Filter struct {
	Date       string
	ClientName string
	Location   string
}

// CreateInput holds the creator-supplied fields of a new meeting.
type CreateInput struct {
	ClientName  string `form:"client_name" json:"client_name"`
	ClientEmail string `form:"client_email" json:"client_email"`
	Date        string `form:"date" json:"date"`
	Time        string `form:"time" json:"time"`
	Location    string `form:"location" json:"location"`
	Description string `form:"description" json:"description"`
}
