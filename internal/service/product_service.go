package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/domain"
	"github.com/RAJRS20/Dot-Decimals/internal/repository"
	"github.com/RAJRS20/Dot-Decimals/internal/uploader"
)

// ProductService coordinates the image uploader and the product store for
// the five catalog operations. Ids arrive as raw path strings; an id that
// does not parse is treated the same as one that matches nothing.
type ProductService interface {
	Create(ctx context.Context, input domain.NewProduct, file *domain.FileUpload) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, update domain.ProductUpdate, file *domain.FileUpload) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo     repository.ProductRepository
	uploader uploader.ImageUploader
	log      *zap.Logger
}

func NewProductService(repo repository.ProductRepository, up uploader.ImageUploader, log *zap.Logger) ProductService {
	return &productService{
		repo:     repo,
		uploader: up,
		log:      log,
	}
}

// Create uploads the attachment first, if any, so that a failed upload
// leaves no partial record behind. The record is only written once the
// image URL is known.
func (s *productService) Create(ctx context.Context, input domain.NewProduct, file *domain.FileUpload) (*domain.Product, error) {
	if file != nil {
		url, err := s.uploader.Upload(ctx, *file)
		if err != nil {
			return nil, err
		}
		input.Image = &url
	}

	product, err := s.repo.Insert(ctx, input)
	if err != nil {
		return nil, err
	}

	s.log.Info("Product created",
		zap.String("id", product.ID.Hex()),
		zap.String("name", product.Name))

	return product, nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, repository.ErrProductNotFound
	}

	return s.repo.GetByID(ctx, oid)
}

// Update replaces only the supplied fields. A new attachment yields a
// replacement image URL; the previous remote object is not cleaned up.
func (s *productService) Update(ctx context.Context, id string, update domain.ProductUpdate, file *domain.FileUpload) (*domain.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, repository.ErrProductNotFound
	}

	if file != nil {
		url, err := s.uploader.Upload(ctx, *file)
		if err != nil {
			return nil, err
		}
		update.Image = &url
	}

	product, err := s.repo.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, err
	}

	s.log.Info("Product updated", zap.String("id", product.ID.Hex()))

	return product, nil
}

// Delete succeeds whether or not the id matched a record; a malformed id
// is likewise treated as already absent.
func (s *productService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return nil
	}

	return s.repo.DeleteByID(ctx, oid)
}

func parseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
