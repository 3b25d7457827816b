package dto

// NameRequest is the body of subject, topic and subtopic create and rename
// calls; all three carry nothing but a display name.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// NoteRequest is the body of a note save. The target scope comes from the
// topic_id query parameter, never from the body.
type NoteRequest struct {
	Content string `json:"content" binding:"required"`
}
