package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/catalog"
	"github.com/RAJRS20/Dot-Decimals/internal/config"
	"github.com/RAJRS20/Dot-Decimals/internal/domain"
	"github.com/RAJRS20/Dot-Decimals/internal/repository"
	"github.com/RAJRS20/Dot-Decimals/internal/service"
	"github.com/RAJRS20/Dot-Decimals/internal/uploader"
)

// fileField is the multipart part carrying the product image.
const fileField = "image"

type Handler struct {
	service service.ProductService
	cfg     *config.AppConfig
	log     *zap.Logger
}

func NewHandler(service service.ProductService, cfg *config.AppConfig, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product", "error": "name is required"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating product", "error": "price must be a non-negative number"})
		return
	}

	file, ok := h.attachment(c, "Error creating product")
	if !ok {
		return
	}

	input := domain.NewProduct{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
	}

	product, err := h.service.Create(c.Request.Context(), input, file)
	if err != nil {
		h.log.Error("Failed to create product", zap.Error(err))
		c.JSON(statusFor(err), gin.H{"message": "Error creating product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// ListProducts never surfaces a store failure: when the repository errors
// out it answers 200 with the static fallback catalog instead.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Warn("Product store unreachable, serving fallback catalog", zap.Error(err))
		c.JSON(http.StatusOK, catalog.Fallback())
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.log.Error("Failed to fetch product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var update domain.ProductUpdate

	if name, ok := c.GetPostForm("name"); ok {
		update.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		update.Description = &description
	}
	if priceStr, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating product", "error": "price must be a non-negative number"})
			return
		}
		update.Price = &price
	}

	file, ok := h.attachment(c, "Error updating product")
	if !ok {
		return
	}

	product, err := h.service.Update(c.Request.Context(), c.Param("id"), update, file)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.log.Error("Failed to update product", zap.Error(err))
		c.JSON(statusFor(err), gin.H{"message": "Error updating product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct answers success whether or not the id matched a record.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error("Failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// attachment extracts the optional image part from the form. It writes the
// error response itself and reports false when the request is unusable.
func (h *Handler) attachment(c *gin.Context, message string) (*domain.FileUpload, bool) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		// No file part at all is fine; the image is optional.
		return nil, true
	}

	if fh.Size > h.cfg.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "error": "file too large"})
		return nil, false
	}

	data, err := readAll(fh)
	if err != nil {
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": "failed to read uploaded file"})
		return nil, false
	}

	return &domain.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// statusFor maps an operation failure to a response code: a rejected
// format is the caller's fault, everything else is a server-side failure.
func statusFor(err error) int {
	if errors.Is(err, uploader.ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
