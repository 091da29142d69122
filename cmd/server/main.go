package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"spamlens/internal/config"
	"spamlens/internal/handler"
	"spamlens/internal/model"
	"spamlens/internal/ocr"
	"spamlens/internal/ocr/ocrspace"
	"spamlens/internal/port"
	"spamlens/internal/router"
	"spamlens/internal/service"
	"spamlens/internal/storage"
)

const shutdownWait = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Model artifacts. A load failure keeps the server up; classification
	// requests then answer MODEL_UNAVAILABLE.
	var spamModel port.SpamModel
	var modelVersion string
	store, err := storage.NewArtifactStore(cfg)
	if err != nil {
		log.Printf("WARNING: model store unavailable: %v", err)
	} else {
		pair, loadErr := model.Load(context.Background(), store, cfg.Model.Manifest)
		if loadErr != nil {
			log.Printf("WARNING: model artifacts not loaded: %v", loadErr)
		} else {
			spamModel = pair
			modelVersion = pair.Version()
			log.Printf("Loaded model %s (%s, %d features)", pair.Version(), pair.Kind(), pair.NumFeatures())
		}
	}

	// OCR provider
	var ocrClient port.OCRClient
	if cfg.OCR.Enabled() {
		ocrClient = ocrspace.NewClient(&cfg.OCR)
	} else {
		log.Printf("WARNING: OCR API key not set; /analyze-all requests with an image will fail")
	}
	extractor := ocr.NewAdapter(ocrClient)

	// Initialize services
	classifySvc := service.NewClassificationService(spamModel, extractor)

	// Initialize handlers
	classifyH := handler.NewClassifyHandler(classifySvc, cfg.OCR.MaxImageBytes())
	healthH := handler.NewHealthHandler(modelVersion, extractor.Available())

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, classifyH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-done:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
