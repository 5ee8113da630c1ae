package repositories

import (
	"context"
	"time"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository defines the interface for contact-message operations
type ContactRepository interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContacts(ctx context.Context) ([]models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// MongoContactRepository implements ContactRepository for MongoDB
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a new MongoContactRepository
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection("contacts")}
}

// CreateContact inserts a new contact message
func (r *MongoContactRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

// GetContacts retrieves all contact messages, newest first
func (r *MongoContactRepository) GetContacts(ctx context.Context) ([]models.Contact, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// DeleteContact deletes a contact message by its hex identifier
func (r *MongoContactRepository) DeleteContact(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
