package listingRepo

import (
	"context"
	"fmt"
	"time"

	"carhive/database"
	"carhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.Collection("listings")
	repo := &MongoListingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create listing indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdByUID", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new listing record. The store assigns the identifier; a
// caller-supplied ID is ignored.
func (r *MongoListingRepo) Create(listing *models.Listing) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	listing.ID = uuid.New().String()
	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// GetByID retrieves a listing by its unique ID. Returns nil when no listing
// matches.
func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

// GetByIDs retrieves all listings whose ID is in the given set.
func (r *MongoListingRepo) GetByIDs(ids []string) ([]models.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

// GetByOwner retrieves all listings created by the given user.
func (r *MongoListingRepo) GetByOwner(ownerID string) ([]models.Listing, error) {
	return r.find(bson.M{"createdByUID": ownerID})
}

// GetByCity retrieves all listings in the given city. The match is exact and
// case-sensitive; no normalization is applied.
func (r *MongoListingRepo) GetByCity(city string) ([]models.Listing, error) {
	return r.find(bson.M{"city": city})
}

func (r *MongoListingRepo) find(filter bson.M) ([]models.Listing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("listing cursor error: %w", err)
	}
	return listings, nil
}
