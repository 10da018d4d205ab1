/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the refund eligibility server. Handles
  configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Build the rules engine (default rules or a JSON config file)
  3. Load the embedded reversal records
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -config  Optional path to a JSON rule configuration; when omitted,
           the built-in production rules are used

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with the built-in rules
  ./server

  # Run with custom rules
  ./server -config=./rules.json

  # Run on different port
  ./server -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - factory/config.go: JSON rule configuration
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/refund-engine/api"
	"github.com/warp/refund-engine/dataset"
	"github.com/warp/refund-engine/eligibility"
	"github.com/warp/refund-engine/factory"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	configPath := flag.String("config", "", "JSON rule configuration file (optional)")
	flag.Parse()

	// Build the engine
	cfg := eligibility.DefaultConfig()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config file: %v", err)
		}
		cfg, err = factory.NewConfigFactory().ParseConfig(string(raw))
		if err != nil {
			log.Fatalf("Failed to parse config file: %v", err)
		}
	}

	engine, err := eligibility.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build eligibility engine: %v", err)
	}

	// Load records
	reversals, err := dataset.Load()
	if err != nil {
		log.Fatalf("Failed to load reversal records: %v", err)
	}
	log.Printf("Loaded %d reversal records", len(reversals))

	// Create router
	handler := api.NewHandler(engine, reversals)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
