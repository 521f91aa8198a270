package uploader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/config"
	"github.com/RAJRS20/Dot-Decimals/internal/domain"
)

// ErrUnsupportedFormat is returned when the attachment's extension is not
// in the configured allow-list.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ImageUploader stores an incoming attachment in remote object storage and
// returns the durable public URL of the created object. It never deletes
// objects; replaced images stay behind.
type ImageUploader interface {
	Upload(ctx context.Context, file domain.FileUpload) (string, error)
}

type s3Uploader struct {
	client  *s3.Client
	cfg     *config.S3Config
	folder  string
	allowed []string
	log     *zap.Logger
}

func NewS3Uploader(cfg *config.Config, log *zap.Logger) (ImageUploader, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.S3.Endpoint != "" {
			return aws.Endpoint{
				URL:               cfg.S3.Endpoint,
				HostnameImmutable: true,
				Source:            aws.EndpointSourceCustom,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &s3Uploader{
		client:  client,
		cfg:     &cfg.S3,
		folder:  cfg.App.UploadFolder,
		allowed: cfg.App.AllowedFormats,
		log:     log,
	}, nil
}

func (u *s3Uploader) Upload(ctx context.Context, file domain.FileUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !u.extAllowed(ext) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	key := u.folder + "/" + uuid.New().String() + ext

	contentType := file.ContentType
	if contentType == "" {
		contentType = contentTypeFor(ext)
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(file.Data))),
	})
	if err != nil {
		u.log.Error("Failed to upload image",
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("upload image: %w", err)
	}

	url := objectURL(u.cfg.PublicBaseURL, u.cfg.BucketName, key)

	u.log.Info("Image uploaded",
		zap.String("key", key),
		zap.String("url", url),
		zap.Int("size", len(file.Data)))

	return url, nil
}

func (u *s3Uploader) extAllowed(ext string) bool {
	for _, allowed := range u.allowed {
		if ext == allowed {
			return true
		}
	}
	return false
}

func contentTypeFor(ext string) string {
	if ext == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}

func objectURL(baseURL, bucket, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + key
}
