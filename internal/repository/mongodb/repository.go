package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/cropstats/internal/domain/models"
	"github.com/mamadbah2/cropstats/internal/registry"
)

const (
	snapshotsCollection = "snapshots"
	currentSnapshotID   = "current"
)

// Repository defines the interface for dataset snapshot storage.
type Repository interface {
	LoadSnapshot(ctx context.Context) (*registry.Dataset, error)
	SaveSnapshot(ctx context.Context, ds *registry.Dataset) error
}

// MongoDBRepository implements the Repository interface for MongoDB. The
// served dataset lives in a single document so a save replaces it whole.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
	now      func() time.Time
}

type snapshotDocument struct {
	ID      string            `bson:"_id"`
	SavedAt time.Time         `bson:"saved_at"`
	Dataset *registry.Dataset `bson:"dataset"`
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return newRepository(client, dbName), nil
}

func newRepository(client *mongo.Client, dbName string) *MongoDBRepository {
	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: snapshotsCollection,
		now:      time.Now,
	}
}

// LoadSnapshot reads the current dataset document.
func (r *MongoDBRepository) LoadSnapshot(ctx context.Context) (*registry.Dataset, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	var doc snapshotDocument
	err := collection.FindOne(ctx, bson.M{"_id": currentSnapshotID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("snapshot %s: %w", currentSnapshotID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}
	if doc.Dataset == nil {
		return nil, fmt.Errorf("snapshot %s has no dataset: %w", currentSnapshotID, models.ErrNoData)
	}
	return doc.Dataset, nil
}

// SaveSnapshot upserts ds as the current dataset document.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, ds *registry.Dataset) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	doc := snapshotDocument{ID: currentSnapshotID, SavedAt: r.now().UTC(), Dataset: ds}
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": currentSnapshotID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Loader adapts a Repository to the registry.
type Loader struct {
	Repo Repository
}

func (Loader) Name() string { return "mongodb" }

func (l Loader) Load(ctx context.Context) (*registry.Dataset, error) {
	return l.Repo.LoadSnapshot(ctx)
}
