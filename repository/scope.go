package repository

import (
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
)

// ScopeFilter returns the Mongo filter that pins a query to one (user, scope)
// pair. A nil id marshals to an explicit null, so the General scope matches
// only documents whose subject_id and topic_id are both null. Every scoped
// query goes through here; no caller builds its own scope filter.
func ScopeFilter(userID string, scope model.Scope) bson.M {
	return bson.M{
		"user_id":    userID,
		"subject_id": scope.SubjectID,
		"topic_id":   scope.TopicID,
	}
}

// topicsFilter matches rows scoped to any of the given topic ids. The $in
// list only ever holds concrete ids, so General rows (null topic_id) can
// never be caught by a cascade.
func topicsFilter(userID string, topicIDs []string) bson.M {
	return bson.M{
		"user_id":  userID,
		"topic_id": bson.M{"$in": topicIDs},
	}
}
