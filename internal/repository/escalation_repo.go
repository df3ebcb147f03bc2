package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindwell/internal/model"
)

// EscalationRepo handles MongoDB operations for escalation records
type EscalationRepo interface {
	Create(ctx context.Context, rec *model.EscalationRecord) (string, error)
	GetByStatus(ctx context.Context, status string) ([]*model.EscalationRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type escalationRepo struct {
	collection *mongo.Collection
}

// NewEscalationRepo creates a new escalation repository
func NewEscalationRepo(db *mongo.Database) EscalationRepo {
	return &escalationRepo{
		collection: db.Collection("escalations"),
	}
}

func (r *escalationRepo) Create(ctx context.Context, rec *model.EscalationRecord) (string, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	if rec.Status == "" {
		rec.Status = "pending"
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	rec.ID = oid.Hex()
	return rec.ID, nil
}

func (r *escalationRepo) GetByStatus(ctx context.Context, status string) ([]*model.EscalationRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []*model.EscalationRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *escalationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	return err
}
