package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subjectsCollection := db.Collection("subjects")
	topicsCollection := db.Collection("topics")
	subtopicsCollection := db.Collection("subtopics")
	notesCollection := db.Collection("notes")
	pdfsCollection := db.Collection("pdfs")
	sessionsCollection := db.Collection("sessions")

	subjectIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("user_subjects_date"),
		},
	}

	topicIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "subject_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("user_subject_topics_date"),
		},
	}

	subtopicIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "topic_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("user_topic_subtopics_date"),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// The scope key. Unique so a racing insert for the same scope fails
		// loudly instead of producing a second row; nulls are indexed values
		// in Mongo, so the General scope (null, null) takes part in the
		// constraint like any topic scope.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "subject_id", Value: 1},
				{Key: "topic_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_scope_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_notes_recency"),
		},
	}

	pdfIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "subject_id", Value: 1},
				{Key: "topic_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("user_scope_pdfs_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_pdfs_recency"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
	}

	for _, target := range []struct {
		collection *mongo.Collection
		indexes    []mongo.IndexModel
	}{
		{subjectsCollection, subjectIndexes},
		{topicsCollection, topicIndexes},
		{subtopicsCollection, subtopicIndexes},
		{notesCollection, noteIndexes},
		{pdfsCollection, pdfIndexes},
		{sessionsCollection, sessionIndexes},
	} {
		if _, err := target.collection.Indexes().CreateMany(ctx, target.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", target.collection.Name(), err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
