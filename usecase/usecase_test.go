package usecase

import (
	"context"
	"os"
	"testing"
	"time"

	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "tostudy_test")
}

type testRepos struct {
	client    *mongo.Client
	subjects  *repository.SubjectsRepo
	topics    *repository.TopicsRepo
	subtopics *repository.SubtopicsRepo
	notes     *repository.NotesRepo
	pdfs      *repository.PDFsRepo
}

func setupTestRepos(t *testing.T) (*testRepos, func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skipf("Skipping test, MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("Skipping test, MongoDB not available: %v", err)
	}

	utils.MongoClient = client

	db := client.Database("tostudy_test")
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	repos := &testRepos{
		client:    client,
		subjects:  repository.GetSubjectsRepo(client),
		topics:    repository.GetTopicsRepo(client),
		subtopics: repository.GetSubtopicsRepo(client),
		notes:     repository.GetNotesRepo(client),
		pdfs:      repository.GetPDFsRepo(client),
	}

	cleanup := func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return repos, cleanup
}

func hierarchyService(r *testRepos) *HierarchyService {
	return &HierarchyService{
		Subjects:  r.subjects,
		Topics:    r.topics,
		Subtopics: r.subtopics,
		Notes:     r.notes,
		PDFs:      r.pdfs,
	}
}
