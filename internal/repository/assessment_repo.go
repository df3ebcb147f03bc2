package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/internal/model"
)

// AssessmentRepo handles MongoDB operations for scored assessments
type AssessmentRepo interface {
	Create(ctx context.Context, record *model.AssessmentRecord) (string, error)
	GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.AssessmentRecord, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	record.ID = oid.Hex()
	return record.ID, nil
}

func (r *assessmentRepo) GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.AssessmentRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AssessmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
