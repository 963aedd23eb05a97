package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/summer0102/real-estate-showcase/models"
)

func TestFilterQueryEmptyFilter(t *testing.T) {
	query := FilterQuery(models.PropertyFilter{})

	// No fields set constrains nothing beyond availability, so a
	// filtered list equals the available list.
	assert.Equal(t, bson.M{"isAvailable": true}, query)
}

func TestFilterQueryAlwaysGatesAvailability(t *testing.T) {
	query := FilterQuery(models.PropertyFilter{PropertyType: models.PropertyTypeHouse})

	assert.Equal(t, true, query["isAvailable"])
}

func TestFilterQueryEquality(t *testing.T) {
	query := FilterQuery(models.PropertyFilter{
		PropertyType: models.PropertyTypeApartment,
		RoomType:     "2 bedrooms 1 bath",
	})

	assert.Equal(t, models.PropertyTypeApartment, query["propertyType"])
	assert.Equal(t, "2 bedrooms 1 bath", query["roomType"])
}

func TestFilterQueryPriceBounds(t *testing.T) {
	tests := []struct {
		name   string
		filter models.PropertyFilter
		want   bson.M
	}{
		{
			name:   "min only",
			filter: models.PropertyFilter{MinPrice: 500},
			want:   bson.M{"$gte": float64(500)},
		},
		{
			name:   "max only",
			filter: models.PropertyFilter{MaxPrice: 1000},
			want:   bson.M{"$lte": float64(1000)},
		},
		{
			name:   "min and max merge into one range",
			filter: models.PropertyFilter{MinPrice: 500, MaxPrice: 1000},
			want:   bson.M{"$gte": float64(500), "$lte": float64(1000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := FilterQuery(tt.filter)
			assert.Equal(t, tt.want, query["price"])
		})
	}
}

func TestFilterQueryAreaBounds(t *testing.T) {
	query := FilterQuery(models.PropertyFilter{MinArea: 20, MaxArea: 45})

	assert.Equal(t, bson.M{"$gte": float64(20), "$lte": float64(45)}, query["area"])
}

func TestFilterQueryZeroValuesAbsent(t *testing.T) {
	query := FilterQuery(models.PropertyFilter{MinPrice: 0, MaxArea: 0})

	_, hasPrice := query["price"]
	_, hasArea := query["area"]
	assert.False(t, hasPrice)
	assert.False(t, hasArea)
}

// Adding a conjunct can only shrink the result: every filter query is the
// availability query plus zero or more field constraints.
func TestFilterQueryMonotonic(t *testing.T) {
	base := FilterQuery(models.PropertyFilter{PropertyType: models.PropertyTypeHouse})
	narrowed := FilterQuery(models.PropertyFilter{
		PropertyType: models.PropertyTypeHouse,
		MaxPrice:     1000,
	})

	for key, val := range base {
		assert.Equal(t, val, narrowed[key])
	}
	assert.Len(t, narrowed, len(base)+1)
}

func TestSetDocPartialUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	price := 750.0
	title := "Renovated Loft"

	doc := setDoc(models.PropertyUpdate{Price: &price, Title: &title}, now)

	assert.Equal(t, bson.M{
		"updatedAt": now,
		"price":     750.0,
		"title":     "Renovated Loft",
	}, doc)
}

func TestSetDocAlwaysRefreshesUpdatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := setDoc(models.PropertyUpdate{}, now)

	assert.Equal(t, bson.M{"updatedAt": now}, doc)
}

func TestSetDocUnpublish(t *testing.T) {
	unavailable := false
	doc := setDoc(models.PropertyUpdate{IsAvailable: &unavailable}, time.Now())

	assert.Equal(t, false, doc["isAvailable"])
}

func TestGetByIDMalformedIDIsNotFound(t *testing.T) {
	ps := &propertyService{}

	_, err := ps.GetByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMalformedIDIsStoreError(t *testing.T) {
	ps := &propertyService{}

	_, err := ps.Update(context.Background(), "nope", models.PropertyUpdate{})

	var se *StoreError
	assert.ErrorAs(t, err, &se)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDeleteMalformedIDIsStoreError(t *testing.T) {
	ps := &propertyService{}

	err := ps.Delete(context.Background(), "nope")

	var se *StoreError
	assert.ErrorAs(t, err, &se)
}

func TestStoreErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := storeErr("list properties", cause)

	assert.ErrorIs(t, err, cause)

	var se *StoreError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "list properties", se.Op)
	assert.Contains(t, err.Error(), "connection reset")
}
