package model

// Scope identifies where a note or PDF lives: either the per-user General
// bucket (both ids nil) or one specific topic. The subject id on a topic
// scope is resolved from the topic row, never taken from the caller.
type Scope struct {
	SubjectID *string `json:"subject_id"`
	TopicID   *string `json:"topic_id"`
}

func GeneralScope() Scope {
	return Scope{}
}

func TopicScope(subjectID, topicID string) Scope {
	return Scope{SubjectID: &subjectID, TopicID: &topicID}
}

func (s Scope) IsGeneral() bool {
	return s.SubjectID == nil && s.TopicID == nil
}
