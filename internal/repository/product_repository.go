package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/domain"
)

// ErrProductNotFound is returned when no product matches the given id.
var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	Insert(ctx context.Context, input domain.NewProduct) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (*domain.Product, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type mongoProductRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewProductRepository(col *mongo.Collection, log *zap.Logger) ProductRepository {
	return &mongoProductRepository{
		col: col,
		log: log,
	}
}

func (r *mongoProductRepository) Insert(ctx context.Context, input domain.NewProduct) (*domain.Product, error) {
	product := domain.Product{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, product); err != nil {
		r.log.Error("Failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, fmt.Errorf("insert product: %w", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.log.Error("Failed to query products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		r.log.Error("Failed to decode products", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		r.log.Error("Failed to fetch product",
			zap.String("id", id.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

func (r *mongoProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update domain.ProductUpdate) (*domain.Product, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product domain.Product
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, setDocument(update), opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		r.log.Error("Failed to update product",
			zap.String("id", id.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &product, nil
}

// DeleteByID removes the product if present. Deleting an id that does not
// exist is not an error; the operation is idempotent.
func (r *mongoProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.String("id", id.Hex()),
			zap.Error(err))
		return fmt.Errorf("delete product: %w", err)
	}

	if res.DeletedCount == 0 {
		r.log.Debug("Delete matched no product", zap.String("id", id.Hex()))
	}

	return nil
}

// setDocument builds a $set document containing only the fields present in
// the update, so untouched fields keep their stored values.
func setDocument(update domain.ProductUpdate) bson.M {
	set := bson.M{}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}

	return bson.M{"$set": set}
}
