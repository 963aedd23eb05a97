package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/summer0102/real-estate-showcase/models"
)

// PropertyService is the single chokepoint between presentation code and
// the property store. It does no caching and no retries; every store
// failure surfaces as a *StoreError, and a miss on GetByID surfaces as
// ErrNotFound.
type PropertyService interface {
	// ListAvailable returns all publicly visible properties, newest first.
	ListAvailable(ctx context.Context) ([]models.Property, error)
	// GetByID returns the property only if it exists and is available;
	// otherwise ErrNotFound. Unavailable rows are hidden even from direct
	// id lookup.
	GetByID(ctx context.Context, id string) (*models.Property, error)
	// ListFiltered returns available properties matching every present
	// filter field, newest first. An empty filter equals ListAvailable.
	ListFiltered(ctx context.Context, f models.PropertyFilter) ([]models.Property, error)
	// Create inserts a new property; the store assigns id and timestamps.
	Create(ctx context.Context, input models.PropertyInput) (*models.Property, error)
	// Update applies the non-nil fields of the partial update and returns
	// the stored row. A missing id is a store failure, not ErrNotFound;
	// admin writes are not availability-gated.
	Update(ctx context.Context, id string, update models.PropertyUpdate) (*models.Property, error)
	// Delete removes the row. Deleting an id that no longer exists is
	// treated as success.
	Delete(ctx context.Context, id string) error
}

type propertyService struct {
	collection *mongo.Collection
}

func NewPropertyService(collection *mongo.Collection) PropertyService {
	return &propertyService{collection: collection}
}

// FilterQuery builds the store query for a filter: availability is always
// required, each present optional field adds one conjunct. Equality for
// type and room type, inclusive bounds for price and area ranges.
func FilterQuery(f models.PropertyFilter) bson.M {
	query := bson.M{"isAvailable": true}

	if f.PropertyType != "" {
		query["propertyType"] = f.PropertyType
	}
	if f.RoomType != "" {
		query["roomType"] = f.RoomType
	}
	if f.MinPrice > 0 {
		query["price"] = bson.M{"$gte": f.MinPrice}
	}
	if f.MaxPrice > 0 {
		if existing, ok := query["price"].(bson.M); ok {
			existing["$lte"] = f.MaxPrice
		} else {
			query["price"] = bson.M{"$lte": f.MaxPrice}
		}
	}
	if f.MinArea > 0 {
		query["area"] = bson.M{"$gte": f.MinArea}
	}
	if f.MaxArea > 0 {
		if existing, ok := query["area"].(bson.M); ok {
			existing["$lte"] = f.MaxArea
		} else {
			query["area"] = bson.M{"$lte": f.MaxArea}
		}
	}

	return query
}

func (ps *propertyService) list(ctx context.Context, query bson.M) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ps.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, storeErr("list properties", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, storeErr("decode properties", err)
	}
	return properties, nil
}

func (ps *propertyService) ListAvailable(ctx context.Context) ([]models.Property, error) {
	return ps.list(ctx, bson.M{"isAvailable": true})
}

func (ps *propertyService) ListFiltered(ctx context.Context, f models.PropertyFilter) ([]models.Property, error) {
	return ps.list(ctx, FilterQuery(f))
}

func (ps *propertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot name any row.
		return nil, ErrNotFound
	}

	var property models.Property
	err = ps.collection.FindOne(ctx, bson.M{"_id": oid, "isAvailable": true}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get property", err)
	}
	return &property, nil
}

func (ps *propertyService) Create(ctx context.Context, input models.PropertyInput) (*models.Property, error) {
	now := time.Now().UTC()

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	features := input.Features
	if features == nil {
		features = []string{}
	}

	property := models.Property{
		ID:            primitive.NewObjectID(),
		Title:         input.Title,
		Description:   input.Description,
		Address:       input.Address,
		PropertyType:  input.PropertyType,
		RoomType:      input.RoomType,
		Price:         input.Price,
		Area:          input.Area,
		Floor:         input.Floor,
		TotalFloors:   input.TotalFloors,
		Age:           input.Age,
		Direction:     input.Direction,
		ManagementFee: input.ManagementFee,
		Images:        images,
		Features:      features,
		IsAvailable:   available,
		ContactName:   input.ContactName,
		ContactPhone:  input.ContactPhone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := ps.collection.InsertOne(ctx, property); err != nil {
		return nil, storeErr("create property", err)
	}
	return &property, nil
}

// setDoc flattens the non-nil fields of a partial update into a $set
// document. updatedAt is always refreshed.
func setDoc(update models.PropertyUpdate, now time.Time) bson.M {
	doc := bson.M{"updatedAt": now}

	if update.Title != nil {
		doc["title"] = *update.Title
	}
	if update.Description != nil {
		doc["description"] = *update.Description
	}
	if update.Address != nil {
		doc["address"] = *update.Address
	}
	if update.PropertyType != nil {
		doc["propertyType"] = *update.PropertyType
	}
	if update.RoomType != nil {
		doc["roomType"] = *update.RoomType
	}
	if update.Price != nil {
		doc["price"] = *update.Price
	}
	if update.Area != nil {
		doc["area"] = *update.Area
	}
	if update.Floor != nil {
		doc["floor"] = *update.Floor
	}
	if update.TotalFloors != nil {
		doc["totalFloors"] = *update.TotalFloors
	}
	if update.Age != nil {
		doc["age"] = *update.Age
	}
	if update.Direction != nil {
		doc["direction"] = *update.Direction
	}
	if update.ManagementFee != nil {
		doc["managementFee"] = *update.ManagementFee
	}
	if update.Images != nil {
		doc["images"] = *update.Images
	}
	if update.Features != nil {
		doc["features"] = *update.Features
	}
	if update.IsAvailable != nil {
		doc["isAvailable"] = *update.IsAvailable
	}
	if update.ContactName != nil {
		doc["contactName"] = *update.ContactName
	}
	if update.ContactPhone != nil {
		doc["contactPhone"] = *update.ContactPhone
	}

	return doc
}

func (ps *propertyService) Update(ctx context.Context, id string, update models.PropertyUpdate) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storeErr("update property", err)
	}

	doc := setDoc(update, time.Now().UTC())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var property models.Property
	err = ps.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": doc}, opts).Decode(&property)
	if err != nil {
		return nil, storeErr("update property", err)
	}
	return &property, nil
}

func (ps *propertyService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("delete property", err)
	}
	if _, err := ps.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return storeErr("delete property", err)
	}
	return nil
}
