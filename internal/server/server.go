package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/kcalsnap/backend/config"
	"github.com/pageza/kcalsnap/backend/internal/api"
	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *gorm.DB, cat *catalog.Catalog, logger *log.Logger) *Server {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	router.Use(middleware.CORS())

	api.SetupAPI(router, db, cat, logger)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
