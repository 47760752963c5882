package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"whisperd/internal/api"
	"whisperd/internal/config"
	"whisperd/internal/health"
	"whisperd/internal/transcribe"
	"whisperd/internal/whisper"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the model once for the process lifetime. A load failure is not
	// fatal: the server keeps running with an empty handle so /health can
	// report the degraded state and an operator can fix the configuration.
	handle := loadModel(cfg)

	svc := transcribe.NewService(handle)
	reporter := health.NewReporter(cfg, handle)
	server := api.NewServer(cfg, svc, reporter)

	r := gin.Default()
	r.Use(corsMiddleware())
	api.RegisterRoutes(r, server)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Whisper service running on %s (model=%s device=%s)", addr, cfg.ModelSize, cfg.Device)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadModel builds the configured engine and loads it. Returns an empty
// handle on failure.
func loadModel(cfg *config.Config) *whisper.Handle {
	engine, err := whisper.CreateEngine(cfg)
	if err != nil {
		log.Printf("Warning: Failed to create whisper engine: %v. Continuing without model.", err)
		return &whisper.Handle{}
	}

	handle, err := whisper.NewHandle(engine)
	if err != nil {
		log.Printf("Warning: Failed to load whisper model: %v. Continuing without model.", err)
	}
	return handle
}

// corsMiddleware adds permissive CORS headers for the translator UI.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
