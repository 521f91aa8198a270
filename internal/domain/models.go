package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a single catalog entry. Image holds the URL of the hosted
// asset once an upload succeeded; it stays nil otherwise.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Image       *string            `json:"image" bson:"image"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// NewProduct carries the fields accepted by the create operation.
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	Image       *string
}

// ProductUpdate carries the fields of a partial update. Nil means the
// field was absent from the request and must be left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Image == nil
}

// FileUpload is an incoming binary attachment destined for object storage.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
