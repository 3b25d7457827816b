package model

import "time"

// PDF is an append-only attachment row. Same scope rule as Note, but any
// number of rows may share one scope. There is no update or delete; rows only
// disappear when a hierarchy delete cascades over their topic.
type PDF struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	SubjectID *string   `bson:"subject_id" json:"subject_id"`
	TopicID   *string   `bson:"topic_id" json:"topic_id"`
	PDFURL    string    `bson:"pdf_url" json:"pdf_url"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
