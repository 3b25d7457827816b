package model

import "time"

// Note is the single free-text note of one (user, scope) pair. SubjectID and
// TopicID are stored without omitempty so the General scope keeps explicit
// nulls, which the unique (user_id, subject_id, topic_id) index relies on.
type Note struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	SubjectID *string   `bson:"subject_id" json:"subject_id"`
	TopicID   *string   `bson:"topic_id" json:"topic_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
