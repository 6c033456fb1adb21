package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"FolderBrowser/internal/infrastructure/config"
	"FolderBrowser/internal/usecase/browser"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// NewRouter はAPIのルーティングを設定した gin.Engine を返します
func NewRouter(svc *browser.Service, logger *zap.Logger, cfg config.ServerConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	h := NewHandlers(svc)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/read_directory", h.ReadDirectory)
		api.POST("/search_directory", h.SearchDirectory)
		api.POST("/open_file", h.OpenFile)
		api.POST("/open_folder", h.OpenFolder)
		api.POST("/browse_folder", h.BrowseFolder)
		api.POST("/inspect", h.Inspect)
		api.GET("/favorites", h.LoadFavorites)
		api.PUT("/favorites", h.SaveFavorites)
	}

	return router
}

// RequestLogger はリクエストごとにメソッド、パス、ステータス、処理時間を記録します
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
			logger.Warn("request failed", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Serve は ctx がキャンセルされるまでAPIを提供し、その後グレースフルに停止します
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("APIサーバーの起動に失敗しました: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("API server shutting down")
	return srv.Shutdown(shutdownCtx)
}
