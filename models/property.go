package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property types form a closed set; anything else is rejected at the
// write boundary.
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeHouse     = "house"
	PropertyTypeStudio    = "studio"
	PropertyTypeOffice    = "office"
)

func IsValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeStudio, PropertyTypeOffice:
		return true
	}
	return false
}

type Property struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Address       string             `bson:"address" json:"address"`
	PropertyType  string             `bson:"propertyType" json:"property_type"`
	RoomType      string             `bson:"roomType" json:"room_type"`
	Price         float64            `bson:"price" json:"price"` // unit: 10,000 currency units
	Area          float64            `bson:"area" json:"area"`
	Floor         int                `bson:"floor" json:"floor"`
	TotalFloors   int                `bson:"totalFloors" json:"total_floors"`
	Age           int                `bson:"age" json:"age"`
	Direction     string             `bson:"direction" json:"direction"`
	ManagementFee float64            `bson:"managementFee" json:"management_fee"`
	Images        []string           `bson:"images" json:"images"`
	Features      []string           `bson:"features" json:"features"`
	IsAvailable   bool               `bson:"isAvailable" json:"is_available"`
	ContactName   string             `bson:"contactName" json:"contact_name"`
	ContactPhone  string             `bson:"contactPhone" json:"contact_phone"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updated_at"`
}

// PropertyInput is the payload for creating a property. The store assigns
// id and timestamps.
type PropertyInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Address       string   `json:"address" validate:"required"`
	PropertyType  string   `json:"property_type" validate:"required,oneof=apartment house studio office"`
	RoomType      string   `json:"room_type"`
	Price         float64  `json:"price" validate:"gte=0"`
	Area          float64  `json:"area" validate:"gte=0"`
	Floor         int      `json:"floor" validate:"gte=0"`
	TotalFloors   int      `json:"total_floors" validate:"gte=0"`
	Age           int      `json:"age" validate:"gte=0"`
	Direction     string   `json:"direction"`
	ManagementFee float64  `json:"management_fee" validate:"gte=0"`
	Images        []string `json:"images" validate:"max=10"`
	Features      []string `json:"features"`
	IsAvailable   *bool    `json:"is_available"`
	ContactName   string   `json:"contact_name"`
	ContactPhone  string   `json:"contact_phone"`
}

// PropertyUpdate carries a partial set of fields; nil pointers leave the
// stored value untouched. Last writer wins, there is no version check.
type PropertyUpdate struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Address       *string   `json:"address"`
	PropertyType  *string   `json:"property_type" validate:"omitempty,oneof=apartment house studio office"`
	RoomType      *string   `json:"room_type"`
	Price         *float64  `json:"price" validate:"omitempty,gte=0"`
	Area          *float64  `json:"area" validate:"omitempty,gte=0"`
	Floor         *int      `json:"floor" validate:"omitempty,gte=0"`
	TotalFloors   *int      `json:"total_floors" validate:"omitempty,gte=0"`
	Age           *int      `json:"age" validate:"omitempty,gte=0"`
	Direction     *string   `json:"direction"`
	ManagementFee *float64  `json:"management_fee" validate:"omitempty,gte=0"`
	Images        *[]string `json:"images" validate:"omitempty,max=10"`
	Features      *[]string `json:"features"`
	IsAvailable   *bool     `json:"is_available"`
	ContactName   *string   `json:"contact_name"`
	ContactPhone  *string   `json:"contact_phone"`
}

// PropertyFilter narrows a list query. Zero values impose no constraint.
type PropertyFilter struct {
	PropertyType string  `json:"property_type"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	MinArea      float64 `json:"min_area"`
	MaxArea      float64 `json:"max_area"`
	RoomType     string  `json:"room_type"`
}

// IsEmpty reports whether the filter constrains nothing, in which case a
// filtered list is equivalent to listing all available properties.
func (f PropertyFilter) IsEmpty() bool {
	return f.PropertyType == "" && f.RoomType == "" &&
		f.MinPrice <= 0 && f.MaxPrice <= 0 && f.MinArea <= 0 && f.MaxArea <= 0
}
