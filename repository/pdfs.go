package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PDFsRepo struct {
	MongoCollection *mongo.Collection
}

func GetPDFsRepo(client *mongo.Client) *PDFsRepo {
	return &PDFsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("pdfs"),
	}
}

// AddPDF appends a new attachment row to a scope. Attachments are never
// deduplicated; every successful upload gets its own row.
func (r *PDFsRepo) AddPDF(ctx context.Context, userID string, scope model.Scope, url string) (*model.PDF, error) {
	timer := utils.TrackDBOperation("insert", "pdfs")
	defer timer.ObserveDuration()

	if userID == "" {
		utils.TrackError("database", "missing_user_id")
		return nil, errors.New("user ID is required")
	}

	pdf := &model.PDF{
		ID:        uuid.New().String(),
		UserID:    userID,
		SubjectID: scope.SubjectID,
		TopicID:   scope.TopicID,
		PDFURL:    url,
		CreatedAt: time.Now(),
	}

	if _, err := r.MongoCollection.InsertOne(ctx, pdf); err != nil {
		utils.TrackError("database", "pdf_insert_failed")
		return nil, err
	}
	return pdf, nil
}

// GetScopePDFs retrieves all attachments of a (user, scope) pair, oldest first
func (r *PDFsRepo) GetScopePDFs(ctx context.Context, userID string, scope model.Scope) ([]*model.PDF, error) {
	timer := utils.TrackDBOperation("find", "pdfs")
	defer timer.ObserveDuration()

	var pdfs []*model.PDF
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, ScopeFilter(userID, scope), opts)
	if err != nil {
		utils.TrackError("database", "pdf_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &pdfs); err != nil {
		return nil, err
	}
	return pdfs, nil
}

// GetRecentPDFs retrieves a user's newest attachments across all scopes
func (r *PDFsRepo) GetRecentPDFs(ctx context.Context, userID string, limit int) ([]*model.PDF, error) {
	timer := utils.TrackDBOperation("find", "pdfs")
	defer timer.ObserveDuration()

	var pdfs []*model.PDF
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "pdf_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &pdfs); err != nil {
		return nil, err
	}
	return pdfs, nil
}

// CountUserPDFs counts the attachments owned by a user across all scopes
func (r *PDFsRepo) CountUserPDFs(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "pdfs")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteTopicsPDFs removes every attachment scoped to any of the given
// topics. General attachments carry a null topic_id and are never matched.
func (r *PDFsRepo) DeleteTopicsPDFs(ctx context.Context, userID string, topicIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "pdfs")
	defer timer.ObserveDuration()

	if len(topicIDs) == 0 {
		return 0, nil
	}

	result, err := r.MongoCollection.DeleteMany(ctx, topicsFilter(userID, topicIDs))
	if err != nil {
		utils.TrackError("database", "pdf_cascade_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}
