package repositories

import (
	"context"
	"time"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SaveRepository defines the interface for favorite-marker operations
type SaveRepository interface {
	CreateSave(ctx context.Context, save *models.Save) error
	GetSavesByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Save, error)
	DeleteSaveByUserAndPost(ctx context.Context, userID, postID primitive.ObjectID) (*models.Save, error)
}

// MongoSaveRepository implements SaveRepository for MongoDB
type MongoSaveRepository struct {
	collection *mongo.Collection
}

// NewMongoSaveRepository creates a new MongoSaveRepository
func NewMongoSaveRepository(db *mongo.Database) *MongoSaveRepository {
	return &MongoSaveRepository{collection: db.Collection("saves")}
}

// CreateSave inserts a new save
func (r *MongoSaveRepository) CreateSave(ctx context.Context, save *models.Save) error {
	save.ID = primitive.NewObjectID()
	save.CreatedAt = time.Now()
	save.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, save)
	return err
}

// GetSavesByUserID retrieves one user's saves with both references expanded
func (r *MongoSaveRepository) GetSavesByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Save, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "posts"},
			{Key: "localField", Value: "post_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "post"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$post"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var saves []models.Save
	if err = cursor.All(ctx, &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

// DeleteSaveByUserAndPost removes the save matching the (user, post) pair
// and returns it, or ErrNotFound when no such save exists.
func (r *MongoSaveRepository) DeleteSaveByUserAndPost(ctx context.Context, userID, postID primitive.ObjectID) (*models.Save, error) {
	var save models.Save
	err := r.collection.FindOneAndDelete(ctx, bson.M{"user_id": userID, "post_id": postID}).Decode(&save)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &save, nil
}
