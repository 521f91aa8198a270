package uploader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/config"
	"github.com/RAJRS20/Dot-Decimals/internal/domain"
)

func testUploader() *s3Uploader {
	// The format check runs before any network call, so a nil client is
	// safe for rejection tests.
	return &s3Uploader{
		cfg: &config.S3Config{
			BucketName:    "catalog",
			PublicBaseURL: "http://localhost:9000",
		},
		folder:  "products",
		allowed: []string{".jpg", ".jpeg", ".png"},
		log:     zap.NewNop(),
	}
}

func TestUploadRejectsUnsupportedFormats(t *testing.T) {
	up := testUploader()

	for _, filename := range []string{"setup.exe", "doc.pdf", "archive.tar.gz", "noextension"} {
		_, err := up.Upload(context.Background(), domain.FileUpload{Filename: filename})
		assert.ErrorIs(t, err, ErrUnsupportedFormat, filename)
	}
}

func TestExtAllowedIsCaseInsensitiveViaLowercasing(t *testing.T) {
	up := testUploader()

	// Upload lowercases the extension before the check.
	assert.True(t, up.extAllowed(".jpg"))
	assert.True(t, up.extAllowed(".png"))
	assert.False(t, up.extAllowed(".JPG"))
	assert.False(t, up.extAllowed(".gif"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor(".png"))
	assert.Equal(t, "image/jpeg", contentTypeFor(".jpg"))
	assert.Equal(t, "image/jpeg", contentTypeFor(".jpeg"))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/catalog/products/abc.png",
		objectURL("http://localhost:9000", "catalog", "products/abc.png"))

	assert.Equal(t,
		"https://cdn.example.com/catalog/products/abc.png",
		objectURL("https://cdn.example.com/", "catalog", "products/abc.png"))
}
