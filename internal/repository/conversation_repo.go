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

// ConversationRepo handles MongoDB operations for chat conversations
type ConversationRepo interface {
	Create(ctx context.Context, conv *model.Conversation) (string, error)
	GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.Conversation, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.Conversation, error)
}

type conversationRepo struct {
	collection *mongo.Collection
}

// NewConversationRepo creates a new conversation repository
func NewConversationRepo(db *mongo.Database) ConversationRepo {
	return &conversationRepo{
		collection: db.Collection("conversations"),
	}
}

func (r *conversationRepo) Create(ctx context.Context, conv *model.Conversation) (string, error) {
	if conv.Timestamp.IsZero() {
		conv.Timestamp = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, conv)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	conv.ID = oid.Hex()
	return conv.ID, nil
}

// GetByUserID returns the user's most recent conversations, newest first
func (r *conversationRepo) GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.Conversation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []*model.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Conversation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []*model.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}
