package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/RAJRS20/Dot-Decimals/internal/config"
	"github.com/RAJRS20/Dot-Decimals/internal/handler"
	"github.com/RAJRS20/Dot-Decimals/internal/repository"
	"github.com/RAJRS20/Dot-Decimals/internal/service"
	"github.com/RAJRS20/Dot-Decimals/internal/uploader"
)

type Server struct {
	httpServer *http.Server
	mongo      *mongo.Client
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	// No ping here on purpose: the list endpoint serves its fallback
	// catalog when the store is down, so the server must come up even
	// with an unreachable database.
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	col := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	up, err := uploader.NewS3Uploader(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image uploader: %w", err)
	}

	repo := repository.NewProductRepository(col, log)
	svc := service.NewProductService(repo, up, log)
	h := handler.NewHandler(svc, &cfg.App, log)

	router.GET("/health", h.HealthCheck)

	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        router,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		mongo: client,
		cfg:   cfg,
		log:   log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if err := s.mongo.Disconnect(ctx); err != nil {
		s.log.Warn("Failed to disconnect mongo client", zap.Error(err))
	}

	return nil
}
